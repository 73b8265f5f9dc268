package assign_minister

// AssignMinisterRequest HTTP request model
// Без ministerId назначается служитель, привязанный к пользователю
type AssignMinisterRequest struct {
	MinisterID *string `json:"ministerId,omitempty"`
}
