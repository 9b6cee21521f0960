package services

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"arheb/internal/domain"
	"arheb/internal/repositories"
	"arheb/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// OTPSender abstracts the phone verification provider.
type OTPSender interface {
	// SendOTP starts a challenge and returns an opaque sessionInfo.
	SendOTP(phoneNumber, recaptchaToken string) (string, error)
	// VerifyOTP checks a code and returns the verified phone number
	// and provider uid (may be empty).
	VerifyOTP(sessionInfo, code string) (phone string, uid string, err error)
}

// FirebaseOTP sends and verifies codes through the Firebase
// identitytoolkit API.
type FirebaseOTP struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

const firebaseBaseURL = "https://identitytoolkit.googleapis.com/v1"

func (f FirebaseOTP) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (f FirebaseOTP) baseURL() string {
	if f.BaseURL != "" {
		return f.BaseURL
	}
	return firebaseBaseURL
}

type firebaseError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (f FirebaseOTP) post(endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/%s?key=%s", f.baseURL(), endpoint, f.APIKey)
	resp, err := f.client().Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("firebase request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var fe firebaseError
		_ = json.NewDecoder(resp.Body).Decode(&fe)
		msg := fe.Error.Message
		if msg == "" {
			msg = "Unexpected Firebase error"
		}
		return domain.AuthenticationError{Msg: msg}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (f FirebaseOTP) SendOTP(phoneNumber, recaptchaToken string) (string, error) {
	payload := map[string]string{"phoneNumber": phoneNumber}
	if recaptchaToken != "" {
		payload["recaptchaToken"] = recaptchaToken
	}
	var out struct {
		SessionInfo string `json:"sessionInfo"`
	}
	if err := f.post("accounts:sendVerificationCode", payload, &out); err != nil {
		return "", err
	}
	return out.SessionInfo, nil
}

func (f FirebaseOTP) VerifyOTP(sessionInfo, code string) (string, string, error) {
	var out struct {
		PhoneNumber string `json:"phoneNumber"`
		LocalID     string `json:"localId"`
	}
	payload := map[string]string{"sessionInfo": sessionInfo, "code": code}
	if err := f.post("accounts:signInWithPhoneNumber", payload, &out); err != nil {
		return "", "", err
	}
	return out.PhoneNumber, out.LocalID, nil
}

// LocalOTP is the dev fallback when no Firebase key is configured: it
// generates a 6-digit code, stores only its bcrypt hash with a short
// expiry, and logs the code so it can be read off the console.
type LocalOTP struct {
	Repo repositories.OTPRepository
	Now  func() time.Time
	// GenerateCode is injectable for tests.
	GenerateCode func() (string, error)
}

const localOTPTTL = 5 * time.Minute

func (l LocalOTP) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l LocalOTP) code() (string, error) {
	if l.GenerateCode != nil {
		return l.GenerateCode()
	}
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (l LocalOTP) SendOTP(phoneNumber, _ string) (string, error) {
	code, err := l.code()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	sessionInfo := uuid.NewString()
	if err := l.Repo.Save(repositories.OTPChallenge{
		PhoneNumber: phoneNumber,
		SessionInfo: sessionInfo,
		CodeHash:    string(hash),
		ExpiresAt:   l.now().Add(localOTPTTL),
	}); err != nil {
		return "", err
	}

	utils.LogEvent("", "auth", "local_otp_issued", fmt.Sprintf("phone=%s code=%s", phoneNumber, code))
	return sessionInfo, nil
}

func (l LocalOTP) VerifyOTP(sessionInfo, code string) (string, string, error) {
	ch, err := l.Repo.Find(sessionInfo)
	if err != nil {
		return "", "", domain.AuthenticationError{Msg: "Invalid or expired OTP session", Err: err}
	}
	if l.now().After(ch.ExpiresAt) {
		_ = l.Repo.Delete(sessionInfo)
		return "", "", domain.AuthenticationError{Msg: "OTP expired"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ch.CodeHash), []byte(code)); err != nil {
		return "", "", domain.AuthenticationError{Msg: "Invalid OTP code"}
	}
	_ = l.Repo.Delete(sessionInfo)
	return ch.PhoneNumber, "", nil
}
