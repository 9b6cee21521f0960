package repositories

import (
	"database/sql"
	"fmt"
	"time"

	intconfig "arheb/internal/config"
	"arheb/internal/domain"
)

// OTPChallenge is one pending local verification code (dev fallback
// mode only; Firebase keeps its own state server side).
type OTPChallenge struct {
	PhoneNumber string
	SessionInfo string
	CodeHash    string
	ExpiresAt   time.Time
}

type OTPRepository struct {
	DB *sql.DB
}

func (r OTPRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r OTPRepository) Save(ch OTPChallenge) error {
	_, err := r.db().Exec(`INSERT INTO otp_challenges (phone_number, session_info, code_hash, expires_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE phone_number = VALUES(phone_number),
			code_hash = VALUES(code_hash), expires_at = VALUES(expires_at)`,
		ch.PhoneNumber, ch.SessionInfo, ch.CodeHash, ch.ExpiresAt)
	if err != nil {
		return fmt.Errorf("save otp challenge: %w", err)
	}
	return nil
}

func (r OTPRepository) Find(sessionInfo string) (*OTPChallenge, error) {
	var ch OTPChallenge
	err := r.db().QueryRow(`SELECT phone_number, session_info, code_hash, expires_at
		FROM otp_challenges WHERE session_info = ?`, sessionInfo).
		Scan(&ch.PhoneNumber, &ch.SessionInfo, &ch.CodeHash, &ch.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, domain.NotFoundError{Resource: "otp challenge"}
	}
	if err != nil {
		return nil, fmt.Errorf("find otp challenge: %w", err)
	}
	return &ch, nil
}

func (r OTPRepository) Delete(sessionInfo string) error {
	if _, err := r.db().Exec(`DELETE FROM otp_challenges WHERE session_info = ?`, sessionInfo); err != nil {
		return fmt.Errorf("delete otp challenge: %w", err)
	}
	return nil
}
