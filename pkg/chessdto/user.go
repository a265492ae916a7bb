package chessdto

// UserData is the locally persisted login record. It is never checked server-side.
type UserData struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=64"`
	UID   string `json:"uid"`
}
