package account_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/coophub/internal/app/features/account"
	"github.com/dalemusser/coophub/internal/app/store/audit"
	userstore "github.com/dalemusser/coophub/internal/app/store/users"
	"github.com/dalemusser/coophub/internal/app/system/auditlog"
	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/app/system/metrics"
	"github.com/dalemusser/coophub/internal/app/system/paging"
	"github.com/dalemusser/coophub/internal/app/system/ratelimit"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/dalemusser/coophub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type env struct {
	db     *mongo.Database
	router chi.Router
	tokens *auth.Tokens
	fx     *testutil.Fixtures
	audit  *audit.Store
}

func setup(t *testing.T, limiter *ratelimit.LoginLimiter) env {
	t.Helper()
	userstore.BcryptCost = bcrypt.MinCost
	db := testutil.SetupTestDB(t)
	tokens := testutil.NewTokens(t)
	log := zap.NewNop()
	events := audit.New(db)
	h := account.NewHandler(db, tokens, metrics.New(), limiter, auditlog.New(events, log, auditlog.Config{}), log)
	gate := auth.Gate(tokens, userstore.New(db), log)
	return env{db: db, router: account.Routes(h, gate, nil), tokens: tokens, fx: testutil.NewFixtures(t, db), audit: events}
}

func (e env) do(r *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	e.router.ServeHTTP(rec, r)
	return rec
}

type sessionBody struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func TestRegister(t *testing.T) {
	e := setup(t, nil)

	body := map[string]string{
		"businessName": "Himal Traders",
		"email":        "  Owner@Himal.COM ",
		"password":     "secret123",
	}
	rec := e.do(testutil.NewJSONRequest(t, "POST", "/register", body))
	rec.AssertStatus(t, http.StatusCreated)

	var got sessionBody
	env := rec.Envelope(t, &got)
	if !env.Success || got.Token == "" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if got.User.Email != "owner@himal.com" || got.User.MembershipType != models.MembershipRegular {
		t.Errorf("unexpected user: %+v", got.User)
	}
	if sub, err := e.tokens.Parse(got.Token); err != nil || sub != got.User.ID.Hex() {
		t.Errorf("token subject = %q, err %v", sub, err)
	}
	if strings.Contains(rec.Body.String(), "$2a$") {
		t.Error("password hash leaked in response")
	}

	// Same email, different case.
	body["email"] = "OWNER@himal.com"
	rec = e.do(testutil.NewJSONRequest(t, "POST", "/register", body))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "User already exists with this email")
}

func TestRegister_Validation(t *testing.T) {
	e := setup(t, nil)

	tests := []struct {
		name  string
		body  any
		field string
	}{
		{"missing email", map[string]string{"businessName": "X", "password": "secret123"}, "email"},
		{"bad email", map[string]string{"businessName": "X", "email": "nope", "password": "secret123"}, "email"},
		{"short password", map[string]string{"businessName": "X", "email": "a@b.co", "password": "123"}, "password"},
		{"multibyte password over 72 bytes", map[string]string{"businessName": "X", "email": "a@b.co", "password": strings.Repeat("€", 40)}, "password"},
		{"bad membership", map[string]string{"businessName": "X", "email": "a@b.co", "password": "secret123", "membershipType": "gold"}, "membershipType"},
		{"unknown field", map[string]string{"businessName": "X", "email": "a@b.co", "password": "secret123", "role": "admin"}, "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.do(testutil.NewJSONRequest(t, "POST", "/register", tt.body))
			rec.AssertStatus(t, http.StatusBadRequest)
			env := rec.Envelope(t, nil)
			if len(env.Errors) == 0 || env.Errors[0].Field != tt.field {
				t.Errorf("errors = %+v, want field %q", env.Errors, tt.field)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	e := setup(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	u := e.fx.CreateUser(ctx, "Himal Traders", "owner@himal.com", "secret123")

	rec := e.do(testutil.NewJSONRequest(t, "POST", "/login", map[string]string{"email": "OWNER@himal.com", "password": "secret123"}))
	rec.AssertStatus(t, http.StatusOK)
	var got sessionBody
	rec.Envelope(t, &got)
	if got.User.ID != u.ID || got.User.LastLogin == nil {
		t.Errorf("unexpected login user: %+v", got.User)
	}

	for _, creds := range []map[string]string{
		{"email": "owner@himal.com", "password": "wrong"},
		{"email": "nobody@himal.com", "password": "secret123"},
	} {
		rec := e.do(testutil.NewJSONRequest(t, "POST", "/login", creds))
		rec.AssertStatus(t, http.StatusBadRequest)
		rec.AssertContains(t, "Invalid credentials")
	}
}

func TestLogin_Throttled(t *testing.T) {
	e := setup(t, ratelimit.NewLoginLimiter(100, 2))

	creds := map[string]string{"email": "owner@himal.com", "password": "wrong"}
	for i := 0; i < 2; i++ {
		e.do(testutil.NewJSONRequest(t, "POST", "/login", creds)).AssertStatus(t, http.StatusBadRequest)
	}
	rec := e.do(testutil.NewJSONRequest(t, "POST", "/login", creds))
	rec.AssertStatus(t, http.StatusTooManyRequests)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	failed, err := e.audit.FailedLogins(ctx, time.Now().Add(-time.Minute), 10)
	if err != nil {
		t.Fatalf("FailedLogins: %v", err)
	}
	var badCreds, throttled int
	for _, ev := range failed {
		switch ev.EventType {
		case audit.EventLoginFailedCredential:
			badCreds++
		case audit.EventLoginFailedRateLimit:
			throttled++
		}
	}
	if badCreds != 2 || throttled != 1 {
		t.Errorf("audit recorded %d credential and %d throttled failures, want 2 and 1", badCreds, throttled)
	}
}

func TestRegister_Audited(t *testing.T) {
	e := setup(t, nil)
	body := map[string]string{"businessName": "Himal Traders", "email": "owner@himal.com", "password": "secret123"}
	e.do(testutil.NewJSONRequest(t, "POST", "/register", body)).AssertStatus(t, http.StatusCreated)
	e.do(testutil.NewJSONRequest(t, "POST", "/register", body)).AssertStatus(t, http.StatusBadRequest)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	pg, err := e.audit.Query(ctx, audit.QueryFilter{Category: audit.CategoryAuth}, paging.Clamp(1, 10, 10))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if pg.Total != 2 {
		t.Fatalf("expected 2 auth events, got %d", pg.Total)
	}
	// newest first
	if pg.Docs[0].EventType != audit.EventRegisterFailed || pg.Docs[1].EventType != audit.EventRegistered {
		t.Errorf("unexpected events: %s, %s", pg.Docs[0].EventType, pg.Docs[1].EventType)
	}
	if pg.Docs[1].UserID == nil {
		t.Error("registered event should carry the new user id")
	}
}

func TestMe(t *testing.T) {
	e := setup(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	u := e.fx.CreateUser(ctx, "Himal Traders", "owner@himal.com", "secret123")

	e.do(testutil.NewJSONRequest(t, "GET", "/me", nil)).AssertStatus(t, http.StatusUnauthorized)

	req := testutil.NewJSONRequest(t, "GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := e.do(req)
	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, auth.MsgTokenFailed)

	rec = e.do(testutil.Bearer(t, testutil.NewJSONRequest(t, "GET", "/me", nil), e.tokens, u))
	rec.AssertStatus(t, http.StatusOK)
	var me models.User
	rec.Envelope(t, &me)
	if me.ID != u.ID {
		t.Errorf("me = %s, want %s", me.ID.Hex(), u.ID.Hex())
	}

	upd := map[string]string{"businessName": "  Himal   Traders Pvt ", "phone": "061-123456"}
	rec = e.do(testutil.Bearer(t, testutil.NewJSONRequest(t, "PUT", "/me", upd), e.tokens, u))
	rec.AssertStatus(t, http.StatusOK)
	rec.Envelope(t, &me)
	if me.BusinessName != "Himal Traders Pvt" || me.Phone != "061-123456" || me.Email != "owner@himal.com" {
		t.Errorf("unexpected profile: %+v", me)
	}
}
