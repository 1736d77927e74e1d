package request

// UpdateUserRolesRequest represents a role assignment request
type UpdateUserRolesRequest struct {
	RoleIDs []uint `json:"role_ids" binding:"required"`
}

// SetUserActiveRequest enables or disables a staff account
type SetUserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
