package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/gotrabandhus/gotrabandhus/model"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicate is returned by Create and Update when the email uniqueness
// constraint is violated. Concurrent registrations with the same email are
// resolved by the store, not by an application lock; callers surface this as
// a rejected registration.
var ErrDuplicate = errors.New("email already exists")

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

// NewUserRepository returns the MySQL-backed UserRepository.
func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users
		(first_name, last_name, nickname, email, password, phone, gender,
		 date_of_birth, birth_city, birth_state, birth_country,
		 current_city, current_state, current_country,
		 gotra, pravara, community, occupation, company, industry,
		 primary_language, secondary_language, bio,
		 hide_email, hide_phone, hide_dob, profile_completed, created_at)
		VALUES
		(:first_name, :last_name, :nickname, :email, :password, :phone, :gender,
		 :date_of_birth, :birth_city, :birth_state, :birth_country,
		 :current_city, :current_state, :current_country,
		 :gotra, :pravara, :community, :occupation, :company, :industry,
		 :primary_language, :secondary_language, :bio,
		 :hide_email, :hide_phone, :hide_dob, :profile_completed, :created_at)`

	updateUserQuery = `UPDATE users SET
		first_name = :first_name, last_name = :last_name, nickname = :nickname,
		email = :email, phone = :phone, gender = :gender,
		date_of_birth = :date_of_birth, birth_city = :birth_city,
		birth_state = :birth_state, birth_country = :birth_country,
		current_city = :current_city, current_state = :current_state,
		current_country = :current_country, gotra = :gotra, pravara = :pravara,
		community = :community, occupation = :occupation, company = :company,
		industry = :industry, primary_language = :primary_language,
		secondary_language = :secondary_language, bio = :bio,
		hide_email = :hide_email, hide_phone = :hide_phone, hide_dob = :hide_dob,
		profile_completed = :profile_completed, updated_at = :updated_at
		WHERE id = :id`

	getUserBase = `SELECT id, first_name, last_name, nickname, email, password, phone,
		gender, date_of_birth, birth_city, birth_state, birth_country,
		current_city, current_state, current_country,
		gotra, pravara, community, occupation, company, industry,
		primary_language, secondary_language, bio,
		hide_email, hide_phone, hide_dob, profile_completed, created_at, updated_at
		FROM users WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	data.CreatedAt = time.Now()

	result, err := s.conn.NamedExecContext(ctx, insertUserQuery, data)
	if err != nil {
		return nil, mapDuplicate(err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	now := time.Now()
	data.UpdatedAt = &now

	result, err := s.conn.NamedExecContext(ctx, updateUserQuery, data)
	if err != nil {
		return nil, mapDuplicate(err)
	}

	// MySQL reports zero affected rows both for a missing ID and for a no-op
	// update, so re-read to tell them apart.
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return s.Get(ctx, &model.UserFilter{ID: data.ID})
	}
	return data, nil
}

func mapDuplicate(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return ErrDuplicate
	}
	return err
}
