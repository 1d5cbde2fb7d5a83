package folio

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eringen/folio/views"
)

const bcryptCost = 10

// Admin is the single credential record gating the admin panel.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
}

// SeedAdmin ensures the admin credential record exists. If a record with the
// given username is already present this is a no-op, so running it on every
// startup never produces duplicates.
func (s *Store) SeedAdmin(username, password string) error {
	var id string
	err := s.db.QueryRow(`SELECT id FROM admins WHERE username = ?`, username).Scan(&id)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO admins (id, username, password_hash) VALUES (?, ?, ?)`,
		uuid.NewString(), username, string(hash))
	return err
}

// GetAdmin returns the credential record for username.
func (s *Store) GetAdmin(username string) (Admin, error) {
	var a Admin
	err := s.db.QueryRow(`SELECT id, username, password_hash FROM admins WHERE username = ?`, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash)
	return a, err
}

// FirstAdmin returns the credential record, whatever its current username.
// There is exactly one row after seeding.
func (s *Store) FirstAdmin() (Admin, error) {
	var a Admin
	err := s.db.QueryRow(`SELECT id, username, password_hash FROM admins LIMIT 1`).
		Scan(&a.ID, &a.Username, &a.PasswordHash)
	return a, err
}

// UpdateAdminCredentials sets a new username and, when password is non-empty,
// a new bcrypt hash for the record matching id.
func (s *Store) UpdateAdminCredentials(id, username, password string) error {
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		_, err = s.db.Exec(`UPDATE admins SET username = ?, password_hash = ? WHERE id = ?`, username, string(hash), id)
		return err
	}
	_, err := s.db.Exec(`UPDATE admins SET username = ? WHERE id = ?`, username, id)
	return err
}

// GetSettings returns the admin settings singleton, or nil if never saved.
func (s *Store) GetSettings() (*views.Settings, error) {
	var st views.Settings
	var sandbox int
	err := s.db.QueryRow(`SELECT username, email, paypal_client_id, paypal_client_secret, paypal_sandbox FROM settings WHERE id = 1`).
		Scan(&st.Username, &st.Email, &st.PayPalClientID, &st.PayPalClientSecret, &sandbox)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	st.PayPalSandbox = sandbox == 1
	return &st, nil
}

// SaveSettings upserts the admin settings singleton.
func (s *Store) SaveSettings(st views.Settings) error {
	sandbox := 0
	if st.PayPalSandbox {
		sandbox = 1
	}
	_, err := s.db.Exec(`INSERT INTO settings (id, username, email, paypal_client_id, paypal_client_secret, paypal_sandbox)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			email = excluded.email,
			paypal_client_id = excluded.paypal_client_id,
			paypal_client_secret = excluded.paypal_client_secret,
			paypal_sandbox = excluded.paypal_sandbox`,
		st.Username, st.Email, st.PayPalClientID, st.PayPalClientSecret, sandbox)
	return err
}
