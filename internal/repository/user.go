package repository

import (
	"database/sql"

	"jobboard/internal/models"
	"jobboard/internal/sqlutil"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

var userColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"password":  "password_hash",
	"isAdmin":   "is_admin",
}

type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(username string, fields []sqlutil.Field) (*models.User, error)
	Delete(username string) error
}

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *sqlx.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) Create(user *models.User) error {
	query := `INSERT INTO users (username, first_name, last_name, email, password_hash, is_admin)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING username, first_name, last_name, email, password_hash, is_admin, created_at`
	return r.db.QueryRowx(query, user.Username, user.FirstName, user.LastName, user.Email,
		user.PasswordHash, user.IsAdmin).StructScan(user)
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	query := `SELECT username, first_name, last_name, email, password_hash, is_admin, created_at FROM users ORDER BY username`
	err := r.db.Select(&users, query)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	query := `SELECT username, first_name, last_name, email, password_hash, is_admin, created_at FROM users WHERE username = $1`
	err := r.db.Get(&user, query, username)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(username string, fields []sqlutil.Field) (*models.User, error) {
	setClause, values, err := sqlutil.BuildPartialUpdate(fields, userColumns)
	if err != nil {
		return nil, err
	}

	query := `UPDATE users SET ` + setClause +
		` WHERE username = ` + sqlutil.Placeholder(len(values)+1) +
		` RETURNING username, first_name, last_name, email, password_hash, is_admin, created_at`
	values = append(values, username)

	var user models.User
	if err := r.db.QueryRowx(query, values...).StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Delete(username string) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
