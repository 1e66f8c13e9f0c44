package repositories

import (
	"github.com/momus-app/momus/backend/internal/models"
	"gorm.io/gorm"
)

// ReportRepository defines the interface for moderation reports against
// posts and comments.
type ReportRepository interface {
	CreatePostReport(report *models.ReportedPost) error
	CreateCommentReport(report *models.ReportedComment) error
	GetPendingPostReports() ([]models.ReportedPost, error)
	GetPendingCommentReports() ([]models.ReportedComment, error)
	ResolvePostReport(id uint) error
	ResolveCommentReport(id uint) error
}

// PostgresReportRepository implements ReportRepository
type PostgresReportRepository struct {
	db *gorm.DB
}

func NewPostgresReportRepository(db *gorm.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) CreatePostReport(report *models.ReportedPost) error {
	return r.db.Create(report).Error
}

func (r *PostgresReportRepository) CreateCommentReport(report *models.ReportedComment) error {
	return r.db.Create(report).Error
}

func (r *PostgresReportRepository) GetPendingPostReports() ([]models.ReportedPost, error) {
	var reports []models.ReportedPost
	err := r.db.Preload("Reporter.User").Where("is_pending = ?", true).Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *PostgresReportRepository) GetPendingCommentReports() ([]models.ReportedComment, error) {
	var reports []models.ReportedComment
	err := r.db.Preload("Reporter.User").Where("is_pending = ?", true).Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *PostgresReportRepository) ResolvePostReport(id uint) error {
	return r.db.Model(&models.ReportedPost{}).Where("id = ?", id).Update("is_pending", false).Error
}

func (r *PostgresReportRepository) ResolveCommentReport(id uint) error {
	return r.db.Model(&models.ReportedComment{}).Where("id = ?", id).Update("is_pending", false).Error
}
