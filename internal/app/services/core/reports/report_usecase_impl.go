package reports

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/requests"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/responses"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportRepository  contracts.ReportRepository
	PatientRepository contracts.PatientRepository
	StudentRepository contracts.StudentRepository
	Storage           contracts.AttachmentStorage
	Transactor        contracts.Transactor
	Locker            contracts.LockerService
	EventPublisher    contracts.ReportEventPublisher
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

func NewReportUsecase(
	reportRepository contracts.ReportRepository,
	patientRepository contracts.PatientRepository,
	studentRepository contracts.StudentRepository,
	storage contracts.AttachmentStorage,
	transactor contracts.Transactor,
	locker contracts.LockerService,
	eventPublisher contracts.ReportEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReportUsecase {
	return &reportUsecase{
		ReportRepository:  reportRepository,
		PatientRepository: patientRepository,
		StudentRepository: studentRepository,
		Storage:           storage,
		Transactor:        transactor,
		Locker:            locker,
		EventPublisher:    eventPublisher,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *reportUsecase) CreateReport(ctx context.Context, identity *models.Identity, request *requests.CreateReport) (*responses.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.CreateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, identity.Role.String()),
	)

	patientID, studentID, staffName, err := uc.resolveCreateAuthorship(identity, request)
	if err != nil {
		uc.Log.Error("reportUsecase.CreateReport authorship rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Lookups ahead of the uploads so a bad reference never stores blobs.
	if _, err := uc.findPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if studentID != nil {
		if _, err := uc.findStudent(ctx, *studentID); err != nil {
			return nil, err
		}
	}

	clinicalRecords, err := uc.storeUploads(ctx, request.ClinicalRecordFiles)
	if err != nil {
		return nil, err
	}
	signatures, err := uc.storeUploads(ctx, request.SignatureFiles)
	if err != nil {
		uc.cleanupAttachments(ctx, clinicalRecords)
		return nil, err
	}

	clinicalRecords, clinicalDuplicates := dedupeByName(clinicalRecords)
	signatures, signatureDuplicates := dedupeByName(signatures)

	now := uc.now().UTC().Truncate(time.Millisecond)
	var report *models.Report
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		patient, err := uc.findPatient(txCtx, patientID)
		if err != nil {
			return err
		}

		report = &models.Report{
			Content:             request.Content,
			CreatedAt:           now,
			LastUpdated:         now,
			Active:              true,
			Version:             1,
			ClinicalRecordFiles: clinicalRecords,
			SignatureFiles:      signatures,
		}
		report.ApplyPatient(patient)

		if studentID != nil {
			student, err := uc.findStudent(txCtx, *studentID)
			if err != nil {
				return err
			}
			report.AuthorAsStudent(student)
		} else {
			report.AuthorAsStaff(staffName)
		}

		_, err = uc.ReportRepository.Insert(txCtx, report)
		return err
	})
	if err != nil {
		uc.Log.Error("reportUsecase.CreateReport transaction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.cleanupAttachments(ctx, joinAttachments(clinicalDuplicates, signatureDuplicates))
		uc.logOrphanedAttachments(ctx, "reportUsecase.CreateReport", joinAttachments(clinicalRecords, signatures))
		return nil, err
	}

	uc.cleanupAttachments(ctx, joinAttachments(clinicalDuplicates, signatureDuplicates))
	uc.publish(ctx, identity, constvars.ReportEventCreated, report)

	uc.Log.Info("reportUsecase.CreateReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, report.ID.Hex()),
	)
	view := ToReportView(report)
	return &view, nil
}

func (uc *reportUsecase) ListReports(ctx context.Context, identity *models.Identity, request *requests.ListReports) (*responses.ReportList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.ListReports called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, identity.Role.String()),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	page := request.Page
	if page <= 0 {
		page = 1
	}
	if page > constvars.ReportMaxPage {
		page = constvars.ReportMaxPage
	}
	pageSize := constvars.ReportPageSize

	empty := &responses.ReportList{
		Reports:     []responses.Report{},
		CurrentPage: page,
	}

	filter := &models.ReportFilter{
		Active:        request.Active,
		Search:        request.Search,
		StudentName:   request.StudentName,
		PatientName:   request.PatientName,
		TreatmentType: request.TreatmentType,
		StaffName:     request.StaffName,
	}
	if request.CreatedOn != nil {
		from := *request.CreatedOn
		until := from.AddDate(0, 0, 1)
		filter.CreatedFrom = &from
		filter.CreatedUntil = &until
	}

	studentIDs, scoped, err := uc.scopedStudentIDs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if scoped {
		if len(studentIDs) == 0 {
			uc.Log.Info("reportUsecase.ListReports caller has no visible students",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return empty, nil
		}
		filter.StudentIDs = studentIDs
	}

	reports, total, err := uc.ReportRepository.Find(ctx, filter, page, pageSize)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("reportUsecase.ListReports succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalKey, total),
	)
	return &responses.ReportList{
		Reports:     ToReportViews(reports),
		TotalItems:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		CurrentPage: page,
	}, nil
}

func (uc *reportUsecase) GetReport(ctx context.Context, identity *models.Identity, reportID string) (*responses.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.GetReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	objectID, err := parseReportID(reportID)
	if err != nil {
		return nil, err
	}

	report, err := uc.findVisibleReport(ctx, identity, objectID)
	if err != nil {
		return nil, err
	}

	view := ToReportView(report)
	return &view, nil
}

func (uc *reportUsecase) UpdateReport(ctx context.Context, identity *models.Identity, reportID string, request *requests.UpdateReport) (*responses.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.UpdateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
		zap.String(constvars.LoggingRoleKey, identity.Role.String()),
	)

	objectID, err := parseReportID(reportID)
	if err != nil {
		return nil, err
	}
	patch, err := uc.resolveUpdatePatch(identity, request)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.lockReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// Scope and reference checks ahead of the uploads so rejected patches never store blobs.
	if _, err := uc.findVisibleReport(ctx, identity, objectID); err != nil {
		return nil, err
	}
	if patch.patientID != nil {
		if _, err := uc.findPatient(ctx, *patch.patientID); err != nil {
			return nil, err
		}
	}
	if patch.studentID != nil {
		if _, err := uc.findStudent(ctx, *patch.studentID); err != nil {
			return nil, err
		}
	}

	uploadedClinical, err := uc.storeUploads(ctx, request.ClinicalRecordFiles)
	if err != nil {
		return nil, err
	}
	uploadedSignatures, err := uc.storeUploads(ctx, request.SignatureFiles)
	if err != nil {
		uc.cleanupAttachments(ctx, uploadedClinical)
		return nil, err
	}

	var (
		report    *models.Report
		discarded []models.AttachmentRef
	)
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		// The transaction may run more than once, so everything derived from the
		// stored report is recomputed here.
		discarded = nil

		current, err := uc.findVisibleReport(txCtx, identity, objectID)
		if err != nil {
			return err
		}
		if request.Version != nil && *request.Version != current.Version {
			return exceptions.ErrReportVersionConflict(nil, reportID, *request.Version, current.Version)
		}
		expectedVersion := current.Version

		if patch.content != nil {
			current.Content = *patch.content
		}
		if patch.patientID != nil {
			patient, err := uc.findPatient(txCtx, *patch.patientID)
			if err != nil {
				return err
			}
			current.ApplyPatient(patient)
		}
		if patch.studentID != nil {
			student, err := uc.findStudent(txCtx, *patch.studentID)
			if err != nil {
				return err
			}
			current.AuthorAsStudent(student)
		}
		if patch.staffName != nil {
			current.AuthorAsStaff(*patch.staffName)
		}

		var dropped []models.AttachmentRef
		current.ClinicalRecordFiles, dropped = mergeAttachments(current.ClinicalRecordFiles, uploadedClinical, request.RemoveClinicalRecords)
		discarded = append(discarded, dropped...)
		current.SignatureFiles, dropped = mergeAttachments(current.SignatureFiles, uploadedSignatures, request.RemoveSignatures)
		discarded = append(discarded, dropped...)

		current.LastUpdated = nextLastUpdated(uc.now(), current.LastUpdated)
		current.Version = expectedVersion + 1

		replaced, err := uc.ReportRepository.Replace(txCtx, current, expectedVersion)
		if err != nil {
			return err
		}
		if !replaced {
			return exceptions.ErrReportModified(nil, reportID)
		}
		report = current
		return nil
	})
	if err != nil {
		uc.Log.Error("reportUsecase.UpdateReport transaction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.logOrphanedAttachments(ctx, "reportUsecase.UpdateReport", joinAttachments(uploadedClinical, uploadedSignatures))
		return nil, err
	}

	uc.cleanupAttachments(ctx, discarded)
	uc.publish(ctx, identity, constvars.ReportEventUpdated, report)

	uc.Log.Info("reportUsecase.UpdateReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	view := ToReportView(report)
	return &view, nil
}

func (uc *reportUsecase) ArchiveReport(ctx context.Context, identity *models.Identity, reportID string) (*responses.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.ArchiveReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	objectID, err := parseReportID(reportID)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.lockReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	report, err := uc.ReportRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil, reportID)
	}

	archivedAt := nextLastUpdated(uc.now(), report.LastUpdated)
	archived, err := uc.ReportRepository.Archive(ctx, objectID, archivedAt)
	if err != nil {
		return nil, err
	}
	if !archived {
		// Distinguishes a concurrent delete from an already archived report.
		current, err := uc.ReportRepository.FindByID(ctx, objectID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrReportNotFound(nil, reportID)
		}
		return nil, exceptions.ErrReportAlreadyArchived(nil, reportID)
	}

	report.Active = false
	report.LastUpdated = archivedAt
	report.Version++
	uc.publish(ctx, identity, constvars.ReportEventArchived, report)

	uc.Log.Info("reportUsecase.ArchiveReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	view := ToReportView(report)
	return &view, nil
}

func (uc *reportUsecase) DeleteReport(ctx context.Context, identity *models.Identity, reportID string) (*responses.DeleteReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.DeleteReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	objectID, err := parseReportID(reportID)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.lockReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	report, err := uc.ReportRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil, reportID)
	}

	deleted, err := uc.ReportRepository.Delete(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, exceptions.ErrReportNotFound(nil, reportID)
	}

	results := uc.cleanupAttachments(ctx, report.Attachments())
	uc.publish(ctx, identity, constvars.ReportEventDeleted, report)

	cleanup := make([]responses.AttachmentCleanup, 0, len(results))
	for _, result := range results {
		item := responses.AttachmentCleanup{
			ID:      result.ID,
			Name:    result.Name,
			Deleted: result.Deleted,
		}
		if result.Err != nil {
			item.Error = result.Err.Error()
		}
		cleanup = append(cleanup, item)
	}

	uc.Log.Info("reportUsecase.DeleteReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	return &responses.DeleteReport{
		ID:                reportID,
		AttachmentCleanup: cleanup,
	}, nil
}

func (uc *reportUsecase) DownloadAttachment(ctx context.Context, fileID string) (*models.AttachmentObject, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.DownloadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttachmentIDKey, fileID),
	)

	object, err := uc.Storage.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if object.ContentType == "" {
		object.ContentType = constvars.MIMEOctetStream
	}
	if object.Filename == "" {
		object.Filename = fileID
	}
	return object, nil
}

// resolveCreateAuthorship returns the patient id and exactly one authorship branch.
// A student caller always authors as itself.
func (uc *reportUsecase) resolveCreateAuthorship(identity *models.Identity, request *requests.CreateReport) (primitive.ObjectID, *primitive.ObjectID, string, error) {
	patientID, err := primitive.ObjectIDFromHex(request.PatientID)
	if err != nil {
		return primitive.NilObjectID, nil, "", exceptions.ErrMongoDBNotObjectID(err)
	}

	if identity.Role == models.RoleStudent {
		studentID, ok := identity.ScopedID()
		if !ok {
			return primitive.NilObjectID, nil, "", exceptions.ErrStudentIdentityNotResolved(nil)
		}
		return patientID, &studentID, "", nil
	}

	hasStudent := request.StudentID != ""
	hasStaff := request.StaffName != ""
	switch {
	case hasStudent && hasStaff:
		return primitive.NilObjectID, nil, "", exceptions.ErrAuthorshipAmbiguous(nil)
	case !hasStudent && !hasStaff:
		return primitive.NilObjectID, nil, "", exceptions.ErrAuthorshipRequired(nil)
	case hasStaff:
		return patientID, nil, request.StaffName, nil
	}

	studentID, err := primitive.ObjectIDFromHex(request.StudentID)
	if err != nil {
		return primitive.NilObjectID, nil, "", exceptions.ErrMongoDBNotObjectID(err)
	}
	return patientID, &studentID, "", nil
}

type reportPatch struct {
	content   *string
	patientID *primitive.ObjectID
	studentID *primitive.ObjectID
	staffName *string
}

func (uc *reportUsecase) resolveUpdatePatch(identity *models.Identity, request *requests.UpdateReport) (*reportPatch, error) {
	patch := &reportPatch{content: request.Content}

	if request.PatientID != nil && *request.PatientID != "" {
		patientID, err := primitive.ObjectIDFromHex(*request.PatientID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		patch.patientID = &patientID
	}

	hasStudent := request.StudentID != nil && *request.StudentID != ""
	hasStaff := request.StaffName != nil && *request.StaffName != ""
	if hasStudent && hasStaff {
		return nil, exceptions.ErrAuthorshipAmbiguous(nil)
	}

	if hasStudent {
		studentID, err := primitive.ObjectIDFromHex(*request.StudentID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		patch.studentID = &studentID
	}
	if hasStaff {
		staffName := *request.StaffName
		patch.staffName = &staffName
	}

	if identity.Role == models.RoleStudent {
		ownID, _ := identity.ScopedID()
		if patch.staffName != nil || (patch.studentID != nil && *patch.studentID != ownID) {
			return nil, exceptions.ErrRoleNotPermitted(fmt.Errorf("student cannot re-author a report"))
		}
	}

	return patch, nil
}

// scopedStudentIDs returns the students whose reports the caller may read. scoped is
// false for roles that see every report.
func (uc *reportUsecase) scopedStudentIDs(ctx context.Context, identity *models.Identity) ([]primitive.ObjectID, bool, error) {
	if !identity.IsScoped() {
		return nil, false, nil
	}

	scopedID, ok := identity.ScopedID()
	if !ok {
		return []primitive.ObjectID{}, true, nil
	}

	switch identity.Role {
	case models.RoleStudent:
		return []primitive.ObjectID{scopedID}, true, nil
	case models.RoleProfessor:
		ids, err := uc.StudentRepository.FindIDsByProfessorID(ctx, scopedID)
		if err != nil {
			return nil, true, err
		}
		return ids, true, nil
	case models.RoleAdmin, models.RoleSecretary, models.RolePatient:
		return nil, false, nil
	default:
		return []primitive.ObjectID{}, true, nil
	}
}

// findVisibleReport loads a report by id regardless of ativoRelatorio and reports a
// report outside the caller scope as not found.
func (uc *reportUsecase) findVisibleReport(ctx context.Context, identity *models.Identity, reportID primitive.ObjectID) (*models.Report, error) {
	report, err := uc.ReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil, reportID.Hex())
	}

	visible, err := uc.isVisible(ctx, identity, report)
	if err != nil {
		return nil, err
	}
	if !visible {
		uc.Log.Info("reportUsecase.findVisibleReport report outside caller scope",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingReportIDKey, reportID.Hex()),
			zap.String(constvars.LoggingRoleKey, identity.Role.String()),
		)
		return nil, exceptions.ErrReportNotFound(nil, reportID.Hex())
	}
	return report, nil
}

func (uc *reportUsecase) isVisible(ctx context.Context, identity *models.Identity, report *models.Report) (bool, error) {
	if !identity.IsScoped() {
		return true, nil
	}
	scopedID, ok := identity.ScopedID()
	if !ok || !report.IsStudentAuthored() {
		return false, nil
	}

	switch identity.Role {
	case models.RoleStudent:
		return *report.StudentID == scopedID, nil
	case models.RoleProfessor:
		student, err := uc.StudentRepository.FindByID(ctx, *report.StudentID)
		if err != nil {
			return false, err
		}
		return student != nil && student.ProfessorID != nil && *student.ProfessorID == scopedID, nil
	case models.RoleAdmin, models.RoleSecretary, models.RolePatient:
		return true, nil
	default:
		return false, nil
	}
}

func (uc *reportUsecase) findPatient(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID.Hex())
	}
	return patient, nil
}

func (uc *reportUsecase) findStudent(ctx context.Context, studentID primitive.ObjectID) (*models.Student, error) {
	student, err := uc.StudentRepository.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, exceptions.ErrStudentNotFound(nil, studentID.Hex())
	}
	return student, nil
}

// storeUploads writes every upload to the attachment store. On failure the blobs
// already written are deleted best-effort.
func (uc *reportUsecase) storeUploads(ctx context.Context, uploads []*requests.AttachmentUpload) ([]models.AttachmentRef, error) {
	refs := make([]models.AttachmentRef, 0, len(uploads))
	for _, upload := range uploads {
		id, err := uc.Storage.Put(ctx, upload.Filename, upload.ContentType, upload.Size, upload.Reader)
		if err != nil {
			uc.cleanupAttachments(ctx, refs)
			return nil, err
		}
		refs = append(refs, models.AttachmentRef{ID: id, Name: upload.Filename})
	}
	return refs, nil
}

// cleanupAttachments deletes every ref and never stops at the first failure.
func (uc *reportUsecase) cleanupAttachments(ctx context.Context, refs []models.AttachmentRef) []models.AttachmentCleanupResult {
	results := make([]models.AttachmentCleanupResult, 0, len(refs))
	for _, ref := range refs {
		result := models.AttachmentCleanupResult{ID: ref.ID, Name: ref.Name}
		err := uc.Storage.Delete(ctx, ref.ID)
		if err != nil {
			result.Err = err
			uc.Log.Warn("reportUsecase.cleanupAttachments failed to delete attachment",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingAttachmentIDKey, ref.ID),
				zap.String(constvars.LoggingBucketNameKey, uc.Storage.Bucket()),
				zap.Error(err),
			)
		} else {
			result.Deleted = true
		}
		results = append(results, result)
	}
	return results
}

func (uc *reportUsecase) logOrphanedAttachments(ctx context.Context, operation string, refs []models.AttachmentRef) {
	if len(refs) == 0 {
		return
	}
	uc.Log.Warn(operation+" left orphaned attachments",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingBucketNameKey, uc.Storage.Bucket()),
		zap.Strings(constvars.LoggingAttachmentIDsKey, attachmentIDs(refs)),
	)
}

// lockReport takes the per-report mutation lock. A lock held by another request is
// a Conflict; a Redis failure only logs, since the transaction still guards the write.
func (uc *reportUsecase) lockReport(ctx context.Context, reportID string) (func(), error) {
	key := fmt.Sprintf(constvars.ReportLockKeyFormat, reportID)
	expiration := time.Duration(uc.InternalConfig.Report.LockExpirationInSeconds) * time.Second
	if expiration <= 0 {
		expiration = 30 * time.Second
	}

	acquired, lockValue, err := uc.Locker.TryLock(ctx, key, expiration)
	if err != nil {
		uc.Log.Warn("reportUsecase.lockReport locker unavailable, continuing without lock",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return func() {}, nil
	}
	if !acquired {
		return nil, exceptions.ErrReportLocked(nil, reportID)
	}

	return func() {
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := uc.Locker.Unlock(unlockCtx, key, lockValue); err != nil {
			uc.Log.Warn("reportUsecase.lockReport failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}

func (uc *reportUsecase) publish(ctx context.Context, identity *models.Identity, event string, report *models.Report) {
	err := uc.EventPublisher.Publish(ctx, &models.ReportEvent{
		Event:      event,
		ReportID:   report.ID.Hex(),
		PatientID:  report.PatientID.Hex(),
		ActorEmail: identity.Email,
		ActorRole:  identity.Role.String(),
		Version:    report.Version,
		OccurredAt: uc.now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("reportUsecase.publish failed to publish report event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingReportIDKey, report.ID.Hex()),
			zap.Error(err),
		)
	}
}

// nextLastUpdated returns now at storage precision, bumped past previous when the
// clock has not moved forward.
func nextLastUpdated(now, previous time.Time) time.Time {
	next := now.UTC().Truncate(time.Millisecond)
	if !next.After(previous) {
		next = previous.UTC().Truncate(time.Millisecond).Add(time.Millisecond)
	}
	return next
}

func parseReportID(reportID string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrURLParamIDValidation(err, constvars.URLParamReportID)
	}
	return objectID, nil
}
