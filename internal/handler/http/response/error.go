package response

import (
	"errors"
	"net/http"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/auth"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/commuting"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/meal"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/message"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/mobileid"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/notice"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/payment"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/push"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/survey"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/training"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/transport"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/user"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrKakaoLoginFailed):
		Unauthorized(w, "Kakao login failed")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrServiceNumberExists):
		Conflict(w, "Service number already registered")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrCookAccessRequired):
		Forbidden(w, err.Error())

	// Batch domain errors
	case errors.Is(err, batch.ErrBatchNotFound):
		NotFound(w, "Batch not found")
	case errors.Is(err, batch.ErrBatchUserNotFound):
		NotFound(w, "Batch membership not found")
	case errors.Is(err, batch.ErrAlreadyMember):
		Conflict(w, "User already belongs to this batch")
	case errors.Is(err, batch.ErrInvalidDateRange):
		BadRequest(w, "Batch end date is before its start date", nil)

	// Training domain errors
	case errors.Is(err, training.ErrTrainingNotFound):
		NotFound(w, "Training not found")
	case errors.Is(err, training.ErrCompensationNotFound):
		NotFound(w, "Compensation record not found")

	// Transport domain errors
	case errors.Is(err, transport.ErrEstimateNotFound):
		NotFound(w, "Transport estimate not found")
	case errors.Is(err, transport.ErrNoUnitLocation):
		BadRequest(w, "Batch has no unit address to route to", nil)

	// Payment workflow errors
	case errors.Is(err, payment.ErrProcessNotFound):
		NotFound(w, "Process not found")
	case errors.Is(err, payment.ErrAlreadyFinalStage):
		Conflict(w, "Process is already at the final stage")
	case errors.Is(err, payment.ErrAlreadyFirstStage):
		Conflict(w, "Process is already at the first stage")
	case errors.Is(err, payment.ErrInvalidAction):
		BadRequest(w, "Action must be advance or revert", nil)

	// Commuting domain errors
	case errors.Is(err, commuting.ErrOutsideAllowedRadius):
		Forbidden(w, err.Error())
	case errors.Is(err, commuting.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, commuting.ErrNotCheckedIn):
		Conflict(w, "Not checked in yet")
	case errors.Is(err, commuting.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, commuting.ErrRecordNotFound):
		NotFound(w, "Commuting record not found")
	case errors.Is(err, commuting.ErrZoneNotFound):
		NotFound(w, "GPS zone not found")

	// Meal domain errors
	case errors.Is(err, meal.ErrPlanNotFound):
		NotFound(w, "Meal plan not found")

	// Notice / message domain errors
	case errors.Is(err, notice.ErrNoticeNotFound):
		NotFound(w, "Notice not found")
	case errors.Is(err, message.ErrMessageNotFound):
		NotFound(w, "Message not found")
	case errors.Is(err, message.ErrNotRecipient):
		Forbidden(w, "Only the recipient can read this message")

	// Survey domain errors
	case errors.Is(err, survey.ErrSurveyNotFound):
		NotFound(w, "Survey not found")
	case errors.Is(err, survey.ErrSurveyClosed):
		Conflict(w, "Survey is closed")
	case errors.Is(err, survey.ErrInvalidChoice):
		BadRequest(w, "Choice is out of range", nil)

	// Push domain errors
	case errors.Is(err, push.ErrSubscriptionNotFound):
		NotFound(w, "Push subscription not found")
	case errors.Is(err, push.ErrPushDisabled):
		Conflict(w, "Push delivery is not configured")

	// Mobile ID domain errors
	case errors.Is(err, mobileid.ErrCardNotFound):
		NotFound(w, "Mobile ID card not found")
	case errors.Is(err, mobileid.ErrCardRevoked):
		Conflict(w, "Mobile ID card has been revoked")
	case errors.Is(err, mobileid.ErrCardExpired):
		Conflict(w, "Mobile ID card has expired")
	case errors.Is(err, mobileid.ErrCardAlreadyUsed):
		Conflict(w, "User already has an active mobile ID card")
	case errors.Is(err, mobileid.ErrPhotoTooLarge):
		BadRequest(w, "Photo exceeds the maximum allowed size", nil)
	case errors.Is(err, mobileid.ErrInvalidPhoto):
		BadRequest(w, "Photo is not a valid image", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
