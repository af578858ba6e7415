package postgres

import (
	"context"

	"traiteur/internal/domain/entity"
	domainerrors "traiteur/internal/domain/errors"
	"traiteur/internal/domain/repository"
	"traiteur/internal/infra/persistence/model"
	"traiteur/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// identityRepository implements the domain.IdentityRepository interface using GORM.
type identityRepository struct {
	q *query.Query
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{
		q: query.Use(db),
	}
}

// CreateAccount persists a new account together with its roles.
func (repo *identityRepository) CreateAccount(ctx context.Context, account *entity.IdentityAccount) error {
	accountM := fromIdentityDomain(account)

	if err := repo.q.IdentityAccountModel.WithContext(ctx).Create(accountM); err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserNameTaken, account.UserName)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity account")
	}

	account.CreatedAt = accountM.CreatedAt

	return nil
}

// FindAccountByUserName retrieves an account by login name.
func (repo *identityRepository) FindAccountByUserName(ctx context.Context, userName string) (*entity.IdentityAccount, error) {
	return repo.findOne(ctx, repo.q.IdentityAccountModel.UserName.Eq(userName))
}

// FindAccountByID retrieves an account by its ID.
func (repo *identityRepository) FindAccountByID(ctx context.Context, id string) (*entity.IdentityAccount, error) {
	return repo.findOne(ctx, repo.q.IdentityAccountModel.ID.Eq(id))
}

func (repo *identityRepository) findOne(ctx context.Context, cond gen.Condition) (*entity.IdentityAccount, error) {
	a := repo.q.IdentityAccountModel

	accountM, err := a.WithContext(ctx).Preload(a.Roles).Where(cond).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity account")
	}

	return toIdentityDomain(accountM), nil
}

// ListAccountsInRole returns every account holding the role, ordered by user name.
func (repo *identityRepository) ListAccountsInRole(ctx context.Context, role entity.Role) ([]*entity.IdentityAccount, error) {
	r := repo.q.AccountRoleModel
	a := repo.q.IdentityAccountModel

	grants, err := r.WithContext(ctx).Where(r.Role.Eq(role.String())).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list role grants")
	}
	if len(grants) == 0 {
		return []*entity.IdentityAccount{}, nil
	}

	accountIDs := make([]string, 0, len(grants))
	for _, grant := range grants {
		accountIDs = append(accountIDs, grant.AccountID)
	}

	accountModels, err := a.WithContext(ctx).
		Preload(a.Roles).
		Where(a.ID.In(accountIDs...)).
		Order(a.UserName).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list identity accounts in role")
	}

	accounts := make([]*entity.IdentityAccount, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toIdentityDomain(accountM))
	}

	return accounts, nil
}

// --- Mapper Functions ---

func toIdentityDomain(data *model.IdentityAccountModel) *entity.IdentityAccount {
	if data == nil {
		return nil
	}

	roles := make([]string, 0, len(data.Roles))
	for _, r := range data.Roles {
		roles = append(roles, r.Role)
	}

	return &entity.IdentityAccount{
		ID:           data.ID,
		UserName:     data.UserName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Roles:        entity.RolesFromStrings(roles),
		CreatedAt:    data.CreatedAt,
	}
}

func fromIdentityDomain(data *entity.IdentityAccount) *model.IdentityAccountModel {
	if data == nil {
		return nil
	}

	roles := make([]model.AccountRoleModel, 0, len(data.Roles))
	for _, r := range data.Roles {
		roles = append(roles, model.AccountRoleModel{AccountID: data.ID, Role: r.String()})
	}

	return &model.IdentityAccountModel{
		ID:           data.ID,
		UserName:     data.UserName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Roles:        roles,
		CreatedAt:    data.CreatedAt,
	}
}
