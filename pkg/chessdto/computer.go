package chessdto

const (
	MinComputerLevel = 1
	MaxComputerLevel = 5
)

// ComputerConfiguration is the side and difficulty assigned to the automated player.
type ComputerConfiguration struct {
	Color Color `json:"color" validate:"required,oneof=white black"`
	Level int   `json:"level" validate:"min=1,max=5"`
}

func DefaultComputerConfiguration() ComputerConfiguration {
	return ComputerConfiguration{Color: Black, Level: MinComputerLevel}
}
