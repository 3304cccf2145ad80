package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeReportRepository struct {
	mu      sync.Mutex
	reports map[primitive.ObjectID]models.Report

	// beforeReplace runs ahead of the version check, outside the lock.
	beforeReplace func()
}

func newFakeReportRepository() *fakeReportRepository {
	return &fakeReportRepository{reports: map[primitive.ObjectID]models.Report{}}
}

func cloneReport(report models.Report) models.Report {
	report.ClinicalRecordFiles = append([]models.AttachmentRef(nil), report.ClinicalRecordFiles...)
	report.SignatureFiles = append([]models.AttachmentRef(nil), report.SignatureFiles...)
	if report.StudentID != nil {
		id := *report.StudentID
		report.StudentID = &id
	}
	return report
}

func (f *fakeReportRepository) Insert(ctx context.Context, report *models.Report) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	f.reports[report.ID] = cloneReport(*report)
	return report.ID, nil
}

func (f *fakeReportRepository) FindByID(ctx context.Context, reportID primitive.ObjectID) (*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	report, ok := f.reports[reportID]
	if !ok {
		return nil, nil
	}
	clone := cloneReport(report)
	return &clone, nil
}

func (f *fakeReportRepository) Find(ctx context.Context, filter *models.ReportFilter, page, pageSize int) ([]models.Report, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.Report
	for _, report := range f.reports {
		if report.Active != filter.Active {
			continue
		}
		if filter.StudentIDs != nil && !containsStudent(filter.StudentIDs, report.StudentID) {
			continue
		}
		if filter.PatientName != "" && !strings.Contains(strings.ToLower(report.PatientName), strings.ToLower(filter.PatientName)) {
			continue
		}
		if filter.CreatedFrom != nil && report.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if filter.CreatedUntil != nil && !report.CreatedAt.Before(*filter.CreatedUntil) {
			continue
		}
		matched = append(matched, cloneReport(report))
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.Hex() > matched[j].ID.Hex()
	})

	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []models.Report{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func containsStudent(ids []primitive.ObjectID, studentID *primitive.ObjectID) bool {
	if studentID == nil {
		return false
	}
	for _, id := range ids {
		if id == *studentID {
			return true
		}
	}
	return false
}

func (f *fakeReportRepository) Replace(ctx context.Context, report *models.Report, expectedVersion int64) (bool, error) {
	if hook := f.beforeReplace; hook != nil {
		hook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.reports[report.ID]
	if !ok || stored.Version != expectedVersion {
		return false, nil
	}
	f.reports[report.ID] = cloneReport(*report)
	return true, nil
}

func (f *fakeReportRepository) Archive(ctx context.Context, reportID primitive.ObjectID, archivedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.reports[reportID]
	if !ok || !stored.Active {
		return false, nil
	}
	stored.Active = false
	stored.LastUpdated = archivedAt
	stored.Version++
	f.reports[reportID] = stored
	return true, nil
}

func (f *fakeReportRepository) Delete(ctx context.Context, reportID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reports[reportID]; !ok {
		return false, nil
	}
	delete(f.reports, reportID)
	return true, nil
}

type fakePatientRepository struct {
	patients map[primitive.ObjectID]*models.Patient
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error) {
	return f.patients[patientID], nil
}

type fakeStudentRepository struct {
	students map[primitive.ObjectID]*models.Student
}

func (f *fakeStudentRepository) FindByID(ctx context.Context, studentID primitive.ObjectID) (*models.Student, error) {
	return f.students[studentID], nil
}

func (f *fakeStudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, student := range f.students {
		if student.Email == email {
			return student, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepository) FindIDsByProfessorID(ctx context.Context, professorID primitive.ObjectID) ([]primitive.ObjectID, error) {
	ids := []primitive.ObjectID{}
	for _, student := range f.students {
		if student.ProfessorID != nil && *student.ProfessorID == professorID {
			ids = append(ids, student.ID)
		}
	}
	return ids, nil
}

type storedBlob struct {
	filename    string
	contentType string
	data        []byte
}

type fakeStorage struct {
	mu        sync.Mutex
	seq       int
	blobs     map[string]storedBlob
	putErr    map[string]error
	deleteErr map[string]error
	deleted   []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{blobs: map[string]storedBlob{}, putErr: map[string]error{}, deleteErr: map[string]error{}}
}

func (f *fakeStorage) Bucket() string { return "relatorios" }

func (f *fakeStorage) Put(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.putErr[filename]; ok {
		return "", err
	}
	f.seq++
	id := fmt.Sprintf("blob-%d", f.seq)
	f.blobs[id] = storedBlob{filename: filename, contentType: contentType, data: data}
	return id, nil
}

func (f *fakeStorage) Get(ctx context.Context, objectID string) (*models.AttachmentObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	blob, ok := f.blobs[objectID]
	if !ok {
		return nil, exceptions.ErrStorageObjectNotFound(nil, objectID, f.Bucket())
	}
	return &models.AttachmentObject{
		ID:          objectID,
		Filename:    blob.filename,
		ContentType: blob.contentType,
		Size:        int64(len(blob.data)),
		Reader:      io.NopCloser(bytes.NewReader(blob.data)),
	}, nil
}

func (f *fakeStorage) Delete(ctx context.Context, objectID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.deleteErr[objectID]; ok {
		return err
	}
	if _, ok := f.blobs[objectID]; !ok {
		return exceptions.ErrStorageObjectNotFound(nil, objectID, f.Bucket())
	}
	delete(f.blobs, objectID)
	f.deleted = append(f.deleted, objectID)
	return nil
}

func (f *fakeStorage) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.blobs)
}

type fakeTransactor struct {
	runs int
	err  error
}

func (f *fakeTransactor) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.runs++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeLocker struct {
	mu   sync.Mutex
	held map[string]string
	err  error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]string{}}
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, "", f.err
	}
	if _, ok := f.held[key]; ok {
		return false, "", nil
	}
	value := primitive.NewObjectID().Hex()
	f.held[key] = value
	return true, value, nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[key] != lockValue {
		return errors.New("lock value mismatch")
	}
	delete(f.held, key)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []models.ReportEvent
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, event *models.ReportEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, *event)
	return f.err
}

func (f *fakePublisher) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.events))
	for _, event := range f.events {
		names = append(names, event.Event)
	}
	return names
}
