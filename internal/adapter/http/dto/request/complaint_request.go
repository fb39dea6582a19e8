package request

// ComplaintRequest is the payload for POST /reclamacao. Field names stay in
// Portuguese to match the platform's public contract.
type ComplaintRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mensagem string `json:"mensagem" binding:"required"`
}
