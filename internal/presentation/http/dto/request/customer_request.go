package request

// CreateCustomerRequest represents a customer creation request.
// CPF, CEP and phone accept formatted or bare digits; they are normalized
// before storage.
type CreateCustomerRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	CPF       *string `json:"cpf" binding:"omitempty,max=14"`
	Email     string  `json:"email" binding:"omitempty,email"`
	Phone     string  `json:"phone" binding:"omitempty,max=20"`
	CEP       string  `json:"cep" binding:"omitempty,max=9"`
	Address   string  `json:"address" binding:"omitempty,max=500"`
	City      string  `json:"city" binding:"omitempty,max=100"`
	State     string  `json:"state" binding:"omitempty,len=2"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Notes     *string `json:"notes"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	CPF       *string `json:"cpf" binding:"omitempty,max=14"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	CEP       *string `json:"cep" binding:"omitempty,max=9"`
	Address   *string `json:"address" binding:"omitempty,max=500"`
	City      *string `json:"city" binding:"omitempty,max=100"`
	State     *string `json:"state" binding:"omitempty,len=2"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Notes     *string `json:"notes"`
}

// CustomerFilterRequest represents customer filter parameters
type CustomerFilterRequest struct {
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
