package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

// --------------------------------------------------
// Roles
// --------------------------------------------------

func (r *IdentityGormRepository) CreateRole(
	ctx context.Context,
	role *models.UserRole,
) error {

	if strings.TrimSpace(role.Name) == "" {
		return httperr.Validation("missing_role_name", "Role name is required.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UserRole{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.UniqueConflict("role_name_taken", "A role with this name already exists.")
		}

		return tx.Create(role).Error
	})

	return translateError(err)
}

func (r *IdentityGormRepository) GetRole(
	ctx context.Context,
	id uint,
) (*models.UserRole, error) {

	var role models.UserRole
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &role, nil
}

func (r *IdentityGormRepository) ListRoles(
	ctx context.Context,
) ([]models.UserRole, error) {

	var roles []models.UserRole
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&roles).Error; err != nil {
		return nil, translateError(err)
	}
	return roles, nil
}

func (r *IdentityGormRepository) UpdateRole(
	ctx context.Context,
	role *models.UserRole,
) error {

	if strings.TrimSpace(role.Name) == "" {
		return httperr.Validation("missing_role_name", "Role name is required.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UserRole{}).
			Where("name = ? AND id <> ?", role.Name, role.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.UniqueConflict("role_name_taken", "A role with this name already exists.")
		}

		return tx.Save(role).Error
	})

	return translateError(err)
}

// DeleteRole rejects the delete while any user still references the role.
func (r *IdentityGormRepository) DeleteRole(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.UserRole](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("role_not_found", "Role not found.")
		}

		var users int64
		if err := tx.Model(&models.AppUser{}).
			Where("user_role_id = ?", id).
			Count(&users).Error; err != nil {
			return err
		}
		if users > 0 {
			return httperr.Referential("role_in_use", "Role is still assigned to users.")
		}

		return tx.Delete(&models.UserRole{}, id).Error
	})

	return translateError(err)
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *IdentityGormRepository) CreateUser(
	ctx context.Context,
	user *models.AppUser,
) error {

	if strings.TrimSpace(user.Username) == "" {
		return httperr.Validation("missing_username", "Username is required.")
	}
	if strings.TrimSpace(user.Email) == "" {
		return httperr.Validation("missing_email", "Email is required.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Inactive roles may still be assigned; only existence matters here.
		ok, err := exists[models.UserRole](tx, user.UserRoleID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("role_not_found", "Assigned role does not exist.")
		}

		if err := r.assertUserUnique(tx, user.Username, user.Email, 0); err != nil {
			return err
		}

		return tx.Create(user).Error
	})

	return translateError(err)
}

func (r *IdentityGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.AppUser, error) {

	var user models.AppUser
	if err := r.db.WithContext(ctx).
		Preload("Role").
		First(&user, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *IdentityGormRepository) ListUsers(
	ctx context.Context,
) ([]models.AppUser, error) {

	var users []models.AppUser
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

func (r *IdentityGormRepository) UpdateUser(
	ctx context.Context,
	user *models.AppUser,
) error {

	if strings.TrimSpace(user.Username) == "" {
		return httperr.Validation("missing_username", "Username is required.")
	}
	if strings.TrimSpace(user.Email) == "" {
		return httperr.Validation("missing_email", "Email is required.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.UserRole](tx, user.UserRoleID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("role_not_found", "Assigned role does not exist.")
		}

		if err := r.assertUserUnique(tx, user.Username, user.Email, user.ID); err != nil {
			return err
		}

		return tx.Save(user).Error
	})

	return translateError(err)
}

// DeleteUser applies the profile policies: an owner profile blocks the
// delete, a veterinarian profile cascades unless clinical history still
// references the veterinarian, an admin profile always cascades.
func (r *IdentityGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.AppUser](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("user_not_found", "User not found.")
		}

		var owners int64
		if err := tx.Model(&models.PetOwner{}).
			Where("user_id = ?", id).
			Count(&owners).Error; err != nil {
			return err
		}
		if owners > 0 {
			return httperr.Referential("user_has_owner_profile", "User still has a pet owner profile.")
		}

		var vet models.Veterinarian
		vetErr := tx.Where("user_id = ?", id).First(&vet).Error
		if vetErr != nil && vetErr != gorm.ErrRecordNotFound {
			return vetErr
		}
		if vetErr == nil {
			if err := assertVeterinarianUnreferenced(tx, vet.ID); err != nil {
				return err
			}
			if err := tx.Delete(&models.Veterinarian{}, vet.ID).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).
			Delete(&models.AdminStaff{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.AppUser{}, id).Error
	})

	return translateError(err)
}

func (r *IdentityGormRepository) assertUserUnique(
	tx *gorm.DB,
	username string,
	email string,
	excludeID uint,
) error {

	var count int64
	if err := tx.Model(&models.AppUser{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.UniqueConflict("username_taken", "Username is already registered.")
	}

	if err := tx.Model(&models.AppUser{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.UniqueConflict("email_taken", "Email is already registered.")
	}

	return nil
}
