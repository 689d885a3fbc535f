package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AtRiskMedia/glowyn-go/internal/application/services"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/analysis"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/media"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: post-9", services.ErrPostNotFound), http.StatusNotFound},
		{services.ErrUnknownAccount, http.StatusNotFound},
		{services.ErrEmptyComment, http.StatusBadRequest},
		{fmt.Errorf("failed to analyze image: %w", analysis.ErrUnknownAnalysisType), http.StatusBadRequest},
		{media.ErrInvalidImage, http.StatusBadRequest},
		{services.ErrNoActiveUser, http.StatusUnauthorized},
		{media.ErrPermissionDenied, http.StatusForbidden},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("model offline"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err, http.StatusBadGateway), tc.err.Error())
	}
}
