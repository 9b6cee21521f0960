package services

import (
	"fmt"
	"strings"

	"arheb/internal/auth"
	"arheb/internal/domain"
	"arheb/internal/repositories"
	"arheb/internal/utils"
)

// Registration case codes, kept wire compatible with the mobile
// clients: 0 = already registered, 1 = OTP sent, 2 = failure.
const (
	RegisterCaseExists = 0
	RegisterCaseSent   = 1
	RegisterCaseError  = 2
)

type RegisterResult struct {
	Case        int
	Message     string
	SessionInfo string
}

type VerifyResult struct {
	Token       string
	PhoneNumber string
}

// AuthService implements the phone-OTP login flow.
type AuthService struct {
	Users     repositories.UserRepository
	Tokens    auth.Tokens
	Sender    OTPSender
	RequestID string
}

func (s AuthService) Register(phoneNumber, recaptchaToken string) (RegisterResult, error) {
	phone := strings.TrimSpace(phoneNumber)
	if phone == "" {
		return RegisterResult{}, domain.ValidationError{Msg: "phoneNumber is required"}
	}

	exists, err := s.Users.Exists(phone)
	if err != nil {
		return RegisterResult{}, domain.InternalError{Msg: "failed to check user", Err: err}
	}
	if exists {
		return RegisterResult{Case: RegisterCaseExists, Message: "Phone number already exist try Login"}, nil
	}

	sessionInfo, err := s.Sender.SendOTP(phone, recaptchaToken)
	if err != nil {
		return RegisterResult{}, err
	}

	utils.LogEvent(s.RequestID, "auth", "otp_sent", fmt.Sprintf("phone=%s", phone))
	return RegisterResult{Case: RegisterCaseSent, Message: "OTP SENT SUCCESSFUL", SessionInfo: sessionInfo}, nil
}

// VerifyOTP confirms the challenge, issues a bearer token and upserts
// the user row with it.
func (s AuthService) VerifyOTP(phoneNumber, sessionInfo, otp string) (VerifyResult, error) {
	if phoneNumber == "" || sessionInfo == "" || otp == "" {
		return VerifyResult{}, domain.ValidationError{Msg: "phoneNumber, sessionInfo, and otp are required"}
	}

	verifiedPhone, uid, err := s.Sender.VerifyOTP(sessionInfo, otp)
	if err != nil {
		return VerifyResult{}, err
	}
	if verifiedPhone == "" {
		verifiedPhone = phoneNumber
	}

	token, err := s.Tokens.Sign(verifiedPhone)
	if err != nil {
		return VerifyResult{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}

	if err := s.Users.Upsert(verifiedPhone, uid, token); err != nil {
		return VerifyResult{}, domain.InternalError{Msg: "failed to save user", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "otp_verified", fmt.Sprintf("phone=%s", verifiedPhone))
	return VerifyResult{Token: "Bearer " + token, PhoneNumber: verifiedPhone}, nil
}
