package dto

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"cs@campusdesk.app"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// LoginResponse carries the issued token and the account's derived role
type LoginResponse struct {
	UserID    string `json:"userId" example:"6b8c7b9e-4d7c-4f1a-9c2f-1f2e3d4c5b6a"`
	Email     string `json:"email" example:"cs@campusdesk.app"`
	Name      string `json:"name" example:"Computer Science"`
	Role      string `json:"role" example:"DEPARTMENT" enums:"ADMIN,DEPARTMENT,INSTRUCTOR"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"3600"`
}

// RegisterDepartmentRequest creates a department account
type RegisterDepartmentRequest struct {
	Email        string `json:"email" binding:"required,email" example:"cs@campusdesk.app"`
	Password     string `json:"password" binding:"required,min=6"`
	Name         string `json:"name" binding:"required" example:"Computer Science"`
	Abbreviation string `json:"abbreviation" binding:"required" example:"CS"`
}

// RegisterInstructorRequest creates an instructor account
type RegisterInstructorRequest struct {
	Email        string `json:"email" binding:"required,email" example:"smith@campusdesk.app"`
	Password     string `json:"password" binding:"required,min=6"`
	Name         string `json:"name" binding:"required" example:"J. Smith"`
	DepartmentID string `json:"departmentId" binding:"required"`
}

// ProfileResponse is the authenticated account's profile
type ProfileResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role" enums:"ADMIN,DEPARTMENT,INSTRUCTOR"`
}
