package handler

// Request payloads. Validation tags are enforced by the echo Validator and
// surfaced through the central error handler.

type signUpRequest struct {
	Name            string `json:"name" validate:"required,min=3,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"omitempty,oneof=user guide lead-guide admin"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

type updatePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// updateProfileRequest deliberately carries password fields without tags so
// the service can reject them with a pointer to the right route.
type updateProfileRequest struct {
	Name            string `json:"name" validate:"omitempty,min=3,max=100"`
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type adminUpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=user guide lead-guide admin"`
}

type createTourRequest struct {
	Name         string   `json:"name" validate:"required,min=3,max=100"`
	Duration     int      `json:"duration" validate:"required,gt=0"`
	MaxGroupSize int      `json:"max_group_size" validate:"required,gt=0"`
	Difficulty   string   `json:"difficulty" validate:"required,oneof=easy medium difficult"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	Summary      string   `json:"summary" validate:"required"`
	Description  string   `json:"description"`
	StartDates   []string `json:"start_dates"`
}

type updateTourRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=3,max=100"`
	Duration     *int     `json:"duration" validate:"omitempty,gt=0"`
	MaxGroupSize *int     `json:"max_group_size" validate:"omitempty,gt=0"`
	Difficulty   *string  `json:"difficulty" validate:"omitempty,oneof=easy medium difficult"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	Summary      *string  `json:"summary"`
	Description  *string  `json:"description"`
}

type createReviewRequest struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	// Tour may come from the body on the flat route; the nested route wins.
	Tour string `json:"tour"`
}

type updateReviewRequest struct {
	Content *string `json:"content"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}
