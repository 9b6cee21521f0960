package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "arheb/internal/config"
	"arheb/internal/domain"
	"arheb/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) FindByPhone(phone string) (*models.User, error) {
	var u models.User
	err := r.db().QueryRow(`SELECT id, phone_number, COALESCE(firebase_uid,''), COALESCE(name,''),
			COALESCE(address_name,''), address_long, address_lat, COALESCE(type,'user')
		FROM users WHERE phone_number = ?`, phone).Scan(
		&u.ID, &u.PhoneNumber, &u.FirebaseUID, &u.Name,
		&u.AddressName, &u.AddressLong, &u.AddressLat, &u.Type,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r UserRepository) Exists(phone string) (bool, error) {
	var count int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE phone_number = ?`, phone).Scan(&count); err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return count > 0, nil
}

// Upsert records a verified login: last issued token and Firebase UID.
func (r UserRepository) Upsert(phone, firebaseUID, token string) error {
	_, err := r.db().Exec(`INSERT INTO users (phone_number, firebase_uid, token)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE firebase_uid = VALUES(firebase_uid), token = VALUES(token)`,
		phone, nullIfEmpty(firebaseUID), token)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// ProfilePatch carries only the fields the caller actually sent.
type ProfilePatch struct {
	Name        *string
	AddressName *string
	AddressLong *float64
	AddressLat  *float64
}

func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.AddressName == nil && p.AddressLong == nil && p.AddressLat == nil
}

func (r UserRepository) UpdateProfile(phone string, patch ProfilePatch) error {
	sets := []string{}
	args := []any{}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, nullIfEmpty(*patch.Name))
	}
	if patch.AddressName != nil {
		sets = append(sets, "address_name = ?")
		args = append(args, nullIfEmpty(*patch.AddressName))
	}
	if patch.AddressLong != nil {
		sets = append(sets, "address_long = ?")
		args = append(args, *patch.AddressLong)
	}
	if patch.AddressLat != nil {
		sets = append(sets, "address_lat = ?")
		args = append(args, *patch.AddressLat)
	}
	if len(sets) == 0 {
		return domain.ValidationError{Msg: "No fields to update"}
	}
	args = append(args, phone)

	_, err := r.db().Exec(`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE phone_number = ?`, args...)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
