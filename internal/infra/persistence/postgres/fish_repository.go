package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"pond/internal/domain/entity"
	domainerrors "pond/internal/domain/errors"
	"pond/internal/domain/repository"
	"pond/internal/infra/persistence/model"
)

const maxListLimit = 100

// Whitelisted order columns, keyed by both the query-param spelling and the
// column name. Anything else falls back to created_at.
var listOrderColumns = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"score":      "score",
	"hot_score":  "hot_score",
	"hotScore":   "hot_score",
}

// fishRepository implements the repository.FishRepository interface using GORM.
type fishRepository struct {
	db *gorm.DB
}

// NewFishRepository is the constructor for fishRepository.
func NewFishRepository(db *gorm.DB) repository.FishRepository {
	return &fishRepository{db: db}
}

// Create persists a new doodle row.
func (repo *fishRepository) Create(ctx context.Context, fish *entity.Fish) error {
	fishM := fromFishDomain(fish)

	if err := repo.db.WithContext(ctx).Create(fishM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create fish")
	}

	fish.CreatedAt = fishM.CreatedAt

	return nil
}

// FindByID retrieves a single doodle.
func (repo *fishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Fish, error) {
	var fishM model.FishModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&fishM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFishNotFound
		}

		return nil, errors.Wrap(err, "failed to find fish by id")
	}

	return toFishDomain(&fishM), nil
}

// List retrieves doodles matching the given params.
func (repo *fishRepository) List(ctx context.Context, params repository.ListFishParams) ([]*entity.Fish, error) {
	query := repo.db.WithContext(ctx).Model(&model.FishModel{})

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.IsVisible != nil {
		query = query.Where("is_visible = ?", *params.IsVisible)
	}
	if params.Deleted != nil {
		query = query.Where("deleted = ?", *params.Deleted)
	}

	limit := params.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	if params.Random {
		query = query.Order("RANDOM()")
	} else {
		column, ok := listOrderColumns[params.OrderBy]
		if !ok {
			column = "created_at"
		}
		direction := "DESC"
		if params.Ascending {
			direction = "ASC"
		}
		query = query.Order(column + " " + direction)
	}

	var fishModels []*model.FishModel
	if err := query.Limit(limit).Find(&fishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list fish")
	}

	fishes := make([]*entity.Fish, 0, len(fishModels))
	for _, fishM := range fishModels {
		fishes = append(fishes, toFishDomain(fishM))
	}

	return fishes, nil
}

// Vote applies a vote as a single atomic counter update so concurrent votes
// never lose increments, then returns the fresh row.
func (repo *fishRepository) Vote(ctx context.Context, id uuid.UUID, direction repository.VoteDirection) (*entity.Fish, error) {
	var updates map[string]any
	if direction == repository.VoteUp {
		updates = map[string]any{
			"upvotes": gorm.Expr("upvotes + 1"),
			"score":   gorm.Expr("upvotes + 1 - downvotes"),
		}
	} else {
		updates = map[string]any{
			"downvotes": gorm.Expr("downvotes + 1"),
			"score":     gorm.Expr("upvotes - downvotes - 1"),
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FishModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to apply vote")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrFishNotFound
	}

	return repo.FindByID(ctx, id)
}

// ReassignOwner moves every doodle owned by fromID to toID.
func (repo *fishRepository) ReassignOwner(ctx context.Context, fromID, toID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.FishModel{}).
		Where("user_id = ?", fromID).
		Update("user_id", toID)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to reassign fish owner")
	}

	return result.RowsAffected, nil
}

// CreateReport records a complaint about a doodle.
func (repo *fishRepository) CreateReport(ctx context.Context, report *entity.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}

	reportM := &model.ReportModel{
		ID:        report.ID,
		FishID:    report.FishID,
		Reason:    report.Reason,
		UserAgent: report.UserAgent,
		URL:       report.URL,
	}

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.CreatedAt = reportM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toFishDomain converts a GORM FishModel to a domain Fish entity.
func toFishDomain(data *model.FishModel) *entity.Fish {
	if data == nil {
		return nil
	}

	return &entity.Fish{
		ID:              data.ID,
		UserID:          data.UserID,
		Artist:          data.Artist,
		Image:           data.Image,
		IsVisible:       data.IsVisible,
		Deleted:         data.Deleted,
		Upvotes:         data.Upvotes,
		Downvotes:       data.Downvotes,
		Score:           data.Score,
		HotScore:        data.HotScore,
		NeedsModeration: data.NeedsModeration,
		CreatedAt:       data.CreatedAt,
	}
}

// fromFishDomain converts a domain Fish entity to a GORM FishModel.
func fromFishDomain(data *entity.Fish) *model.FishModel {
	if data == nil {
		return nil
	}

	return &model.FishModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Artist:          data.Artist,
		Image:           data.Image,
		IsVisible:       data.IsVisible,
		Deleted:         data.Deleted,
		Upvotes:         data.Upvotes,
		Downvotes:       data.Downvotes,
		Score:           data.Score,
		HotScore:        data.HotScore,
		NeedsModeration: data.NeedsModeration,
	}
}
