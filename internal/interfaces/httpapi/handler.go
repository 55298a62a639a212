package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/soccer-tracker/internal/platform/logging"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

type Handler struct {
	tracker         *usecase.TrackerService
	sessions        SessionStore
	overviewWorkers int
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(tracker *usecase.TrackerService, sessions SessionStore, overviewWorkers int, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tracker:         tracker,
		sessions:        sessions,
		overviewWorkers: overviewWorkers,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(r.Context(), dst)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseOptionalInt(raw string, name string, lo, hi int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%w: %s must be an integer between %d and %d", usecase.ErrInvalidInput, name, lo, hi)
	}
	return v, nil
}

// sessionOrError is only reached behind RequireSession, so a miss is a wiring bug.
func sessionOrError(ctx context.Context, w http.ResponseWriter) (*usecase.Session, bool) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		writeInternalError(ctx, w)
		return nil, false
	}
	return session, true
}
