package api

import (
	"testing"
	"time"

	"receiptvision/internal/api/handlers"
	"receiptvision/pkg/auth"

	"go.uber.org/zap"
)

func TestSetupRouter_BodyLimitFollowsUploadConfig(t *testing.T) {
	nop := zap.NewNop()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 7*24*time.Hour)

	app := SetupRouter(
		handlers.NewAuthHandler(nil, nop),
		handlers.NewReceiptHandler(nil, nop),
		handlers.NewInvoiceHandler(nil, nop),
		handlers.NewLedgerHandler(nil, nop),
		handlers.NewAnalyticsHandler(nil, nop),
		handlers.NewGoalHandler(nil, nop),
		jwtManager,
		t.TempDir(),
		25,
		nop,
	)

	if got, want := app.Config().BodyLimit, 25*1024*1024; got != want {
		t.Errorf("BodyLimit = %d, want %d", got, want)
	}
}
