package dto

type RejectRequest struct {
	Reason string `json:"reason"`
}

type CommitteeMemberRequest struct {
	Name       string `json:"name" validate:"required"`
	Position   string `json:"position" validate:"required"`
	Department string `json:"department"`
	PhotoURL   string `json:"photo_url"`
	Kind       string `json:"kind" validate:"required,oneof=committee hod"`
	Order      int    `json:"order"`
}

type RoleUpdateRequest struct {
	Role string `json:"role" validate:"required,oneof=visitor member admin"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}
