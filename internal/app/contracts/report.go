package contracts

import (
	"context"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/requests"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportUsecase interface {
	CreateReport(ctx context.Context, identity *models.Identity, request *requests.CreateReport) (*responses.Report, error)
	ListReports(ctx context.Context, identity *models.Identity, request *requests.ListReports) (*responses.ReportList, error)
	GetReport(ctx context.Context, identity *models.Identity, reportID string) (*responses.Report, error)
	UpdateReport(ctx context.Context, identity *models.Identity, reportID string, request *requests.UpdateReport) (*responses.Report, error)
	ArchiveReport(ctx context.Context, identity *models.Identity, reportID string) (*responses.Report, error)
	DeleteReport(ctx context.Context, identity *models.Identity, reportID string) (*responses.DeleteReport, error)
	DownloadAttachment(ctx context.Context, fileID string) (*models.AttachmentObject, error)
}

type ReportRepository interface {
	Insert(ctx context.Context, report *models.Report) (primitive.ObjectID, error)
	// FindByID returns nil, nil when no report has the given id.
	FindByID(ctx context.Context, reportID primitive.ObjectID) (*models.Report, error)
	Find(ctx context.Context, filter *models.ReportFilter, page, pageSize int) ([]models.Report, int64, error)
	// Replace writes report only while the stored versao still equals expectedVersion.
	Replace(ctx context.Context, report *models.Report, expectedVersion int64) (bool, error)
	// Archive flips ativoRelatorio to false only when it is currently true.
	Archive(ctx context.Context, reportID primitive.ObjectID, archivedAt time.Time) (bool, error)
	Delete(ctx context.Context, reportID primitive.ObjectID) (bool, error)
}
