package test

import (
	"encoding/json"
	"net/http"
	"testing"

	"FindThemAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSignup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearData()

		req := newJSONRequest(t, "POST", "/api/auth/signup", model.SignupRequest{
			Phone:           "555-0100",
			UserID:          "alice",
			Password:        "secret",
			ConfirmPassword: "secret",
		})
		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusCreated, rr.Code) {
			printBody(t, rr)
		}

		var resp model.SignupResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Equal(t, "User created successfully", resp.Message)
		assert.Equal(t, "alice", resp.UserID)

		user, found := testRepo.User.FindByUserID("alice")
		assert.True(t, found)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "secret", user.Password)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		clearData()

		req := newJSONRequest(t, "POST", "/api/auth/signup", model.SignupRequest{
			UserID:   "alice",
			Password: "secret",
		})
		rr := executeRequest(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "All fields are required", decodeError(t, rr))
	})

	t.Run("Password Mismatch", func(t *testing.T) {
		clearData()

		req := newJSONRequest(t, "POST", "/api/auth/signup", model.SignupRequest{
			Phone:           "555-0100",
			UserID:          "alice",
			Password:        "secret",
			ConfirmPassword: "other",
		})
		rr := executeRequest(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Passwords do not match", decodeError(t, rr))
	})

	t.Run("Duplicate User ID", func(t *testing.T) {
		clearData()

		signup := model.SignupRequest{
			Phone:           "555-0100",
			UserID:          "alice",
			Password:        "secret",
			ConfirmPassword: "secret",
		}
		rr := executeRequest(newJSONRequest(t, "POST", "/api/auth/signup", signup))
		assert.Equal(t, http.StatusCreated, rr.Code)

		rr = executeRequest(newJSONRequest(t, "POST", "/api/auth/signup", signup))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User ID already exists", decodeError(t, rr))
	})
}

func TestLogin(t *testing.T) {
	signupAlice := func(t *testing.T) {
		rr := executeRequest(newJSONRequest(t, "POST", "/api/auth/signup", model.SignupRequest{
			Phone:           "555-0100",
			UserID:          "alice",
			Password:        "secret",
			ConfirmPassword: "secret",
		}))
		if rr.Code != http.StatusCreated {
			t.Fatalf("failed to create test user: %s", rr.Body.String())
		}
	}

	t.Run("Success", func(t *testing.T) {
		clearData()
		signupAlice(t)

		rr := executeRequest(newJSONRequest(t, "POST", "/api/auth/login", model.LoginRequest{
			UserID:   "alice",
			Password: "secret",
		}))

		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp model.LoginResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, "alice", resp.UserID)
		assert.True(t, resp.IsLoggedIn)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		clearData()
		signupAlice(t)

		rr := executeRequest(newJSONRequest(t, "POST", "/api/auth/login", model.LoginRequest{
			UserID:   "alice",
			Password: "wrong",
		}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid credentials", decodeError(t, rr))
	})

	t.Run("Unknown User", func(t *testing.T) {
		clearData()

		rr := executeRequest(newJSONRequest(t, "POST", "/api/auth/login", model.LoginRequest{
			UserID:   "nobody",
			Password: "secret",
		}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		clearData()

		rr := executeRequest(newJSONRequest(t, "POST", "/api/auth/login", model.LoginRequest{
			UserID: "alice",
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User ID and password are required", decodeError(t, rr))
	})
}

func TestAdminLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearData()

		rr := executeRequest(newJSONRequest(t, "POST", "/api/auth/admin-login", model.LoginRequest{
			UserID:   "admin",
			Password: "admin123",
		}))

		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp model.AdminLoginResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Equal(t, "Admin login successful", resp.Message)
		assert.Equal(t, "admin", resp.UserID)
		assert.True(t, resp.IsAdmin)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		clearData()

		rr := executeRequest(newJSONRequest(t, "POST", "/api/auth/admin-login", model.LoginRequest{
			UserID:   "admin",
			Password: "nope",
		}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid admin credentials", decodeError(t, rr))
	})

	t.Run("User Credentials Do Not Work", func(t *testing.T) {
		clearData()

		rr := executeRequest(newJSONRequest(t, "POST", "/api/auth/signup", model.SignupRequest{
			Phone:           "555-0100",
			UserID:          "bob",
			Password:        "secret",
			ConfirmPassword: "secret",
		}))
		assert.Equal(t, http.StatusCreated, rr.Code)

		rr = executeRequest(newJSONRequest(t, "POST", "/api/auth/admin-login", model.LoginRequest{
			UserID:   "bob",
			Password: "secret",
		}))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
