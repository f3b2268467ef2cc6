package repository

import (
	"github.com/linskybing/recruit-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	UserExists(id uint) (bool, error)
	HasRole(userID uint, role user.RoleName) (bool, error)
	GetCandidate(id uint) (user.Candidate, error)
	CreateUser(u *user.User) error
	CreateCandidate(c *user.Candidate) error
	EnsureRole(name user.RoleName) (user.Role, error)
	GrantRole(userID uint, role user.RoleName) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) UserExists(id uint) (bool, error) {
	var n int64
	err := r.db.Model(&user.User{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *DBUserRepo) HasRole(userID uint, role user.RoleName) (bool, error) {
	var n int64
	err := r.db.Table("user_roles ur").
		Joins("JOIN roles ro ON ro.id = ur.role_id").
		Where("ur.user_id = ? AND ro.name = ?", userID, role).
		Count(&n).Error
	return n > 0, err
}

func (r *DBUserRepo) GetCandidate(id uint) (user.Candidate, error) {
	var c user.Candidate
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) CreateCandidate(c *user.Candidate) error {
	return r.db.Create(c).Error
}

func (r *DBUserRepo) EnsureRole(name user.RoleName) (user.Role, error) {
	role := user.Role{Name: name}
	err := r.db.Where(user.Role{Name: name}).FirstOrCreate(&role).Error
	return role, err
}

func (r *DBUserRepo) GrantRole(userID uint, name user.RoleName) error {
	role, err := r.EnsureRole(name)
	if err != nil {
		return err
	}
	ur := user.UserRole{UserID: userID, RoleID: role.ID}
	return r.db.Where(ur).FirstOrCreate(&ur).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
