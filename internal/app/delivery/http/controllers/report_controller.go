package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/middlewares"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/requests"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	ReportUsecase  contracts.ReportUsecase
	InternalConfig *config.InternalConfig
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase, internalConfig *config.InternalConfig) *ReportController {
	return &ReportController{
		Log:            logger,
		ReportUsecase:  reportUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ReportController) CreateReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ReportController.CreateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identity, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIdentity(nil))
		return
	}

	if err := ctrl.parseMultipartForm(w, r); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	request, err := utils.BuildCreateReportRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer requests.CloseUploads(request.ClinicalRecordFiles, request.SignatureFiles)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.ReportUsecase.CreateReport(ctx, identity, request)
	if err != nil {
		ctrl.handleUsecaseError(w, "ReportController.CreateReport", requestID, err)
		return
	}

	utils.BuildResourceResponse(w, constvars.StatusCreated, result)
}

func (ctrl *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ReportController.ListReports called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identity, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIdentity(nil))
		return
	}

	request, err := utils.BuildListReportsRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.ReportUsecase.ListReports(ctx, identity, request)
	if err != nil {
		ctrl.handleUsecaseError(w, "ReportController.ListReports", requestID, err)
		return
	}

	utils.BuildResourceResponse(w, constvars.StatusOK, result)
}

func (ctrl *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	reportID := chi.URLParam(r, constvars.URLParamReportID)
	ctrl.Log.Info("ReportController.GetReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	identity, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIdentity(nil))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.ReportUsecase.GetReport(ctx, identity, reportID)
	if err != nil {
		ctrl.handleUsecaseError(w, "ReportController.GetReport", requestID, err)
		return
	}

	utils.BuildResourceResponse(w, constvars.StatusOK, result)
}

// UpdateReport accepts multipart (with new attachments) or a plain JSON patch.
func (ctrl *ReportController) UpdateReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	reportID := chi.URLParam(r, constvars.URLParamReportID)
	ctrl.Log.Info("ReportController.UpdateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	identity, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIdentity(nil))
		return
	}

	var request *requests.UpdateReport
	if utils.IsMultipartRequest(r) {
		if err := ctrl.parseMultipartForm(w, r); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		var err error
		request, err = utils.BuildUpdateReportMultipartRequest(r)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		defer requests.CloseUploads(request.ClinicalRecordFiles, request.SignatureFiles)
	} else {
		request = new(requests.UpdateReport)
		r.Body = http.MaxBytesReader(w, r.Body, ctrl.bodyLimitInBytes())
		err := json.NewDecoder(r.Body).Decode(request)
		if err != nil && !errors.Is(err, io.EOF) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.ReportUsecase.UpdateReport(ctx, identity, reportID, request)
	if err != nil {
		ctrl.handleUsecaseError(w, "ReportController.UpdateReport", requestID, err)
		return
	}

	utils.BuildResourceResponse(w, constvars.StatusOK, result)
}

func (ctrl *ReportController) ArchiveReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	reportID := chi.URLParam(r, constvars.URLParamReportID)
	ctrl.Log.Info("ReportController.ArchiveReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	identity, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIdentity(nil))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.ReportUsecase.ArchiveReport(ctx, identity, reportID)
	if err != nil {
		ctrl.handleUsecaseError(w, "ReportController.ArchiveReport", requestID, err)
		return
	}

	utils.BuildResourceResponse(w, constvars.StatusOK, result)
}

func (ctrl *ReportController) DeleteReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	reportID := chi.URLParam(r, constvars.URLParamReportID)
	ctrl.Log.Info("ReportController.DeleteReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	identity, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIdentity(nil))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	result, err := ctrl.ReportUsecase.DeleteReport(ctx, identity, reportID)
	if err != nil {
		ctrl.handleUsecaseError(w, "ReportController.DeleteReport", requestID, err)
		return
	}

	utils.BuildResourceResponse(w, constvars.StatusOK, result)
}

// DownloadAttachment streams the stored bytes as they are, no JSON envelope.
func (ctrl *ReportController) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	fileID := chi.URLParam(r, constvars.URLParamFileID)
	ctrl.Log.Info("ReportController.DownloadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttachmentIDKey, fileID),
	)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	object, err := ctrl.ReportUsecase.DownloadAttachment(ctx, fileID)
	if err != nil {
		ctrl.handleUsecaseError(w, "ReportController.DownloadAttachment", requestID, err)
		return
	}
	defer object.Close()

	w.Header().Set(constvars.HeaderContentType, object.ContentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf(constvars.ContentDispositionAttachmentFmt, object.Filename))
	if object.Size > 0 {
		w.Header().Set(constvars.HeaderContentLength, strconv.FormatInt(object.Size, 10))
	}
	w.WriteHeader(constvars.StatusOK)

	written, err := io.Copy(w, object.Reader)
	if err != nil {
		// Headers are already out, nothing left to tell the client.
		ctrl.Log.Error("ReportController.DownloadAttachment stream interrupted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAttachmentIDKey, fileID),
			zap.Int64(constvars.LoggingSizeKey, written),
			zap.Error(err),
		)
	}
}

// parseMultipartForm enforces the body limit and the per file upload limit.
func (ctrl *ReportController) parseMultipartForm(w http.ResponseWriter, r *http.Request) error {
	maxUploadInMB := ctrl.InternalConfig.Storage.MaxUploadSizeInMB
	r.Body = http.MaxBytesReader(w, r.Body, ctrl.bodyLimitInBytes())

	err := r.ParseMultipartForm(constvars.ReportMultipartMemoryInBytes)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrFileTooLarge(err, maxUploadInMB)
		}
		return exceptions.ErrCannotParseMultipartForm(err)
	}

	if maxUploadInMB <= 0 {
		return nil
	}
	limit := maxUploadInMB << 20
	for _, field := range []string{constvars.ReportAttachmentFieldClinicalRecord, constvars.ReportAttachmentFieldSignature} {
		for _, header := range r.MultipartForm.File[field] {
			if header.Size > limit {
				r.MultipartForm.RemoveAll()
				return exceptions.ErrFileTooLarge(fileTooLarge(header), maxUploadInMB)
			}
		}
	}
	return nil
}

func (ctrl *ReportController) bodyLimitInBytes() int64 {
	limit := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	// Several attachments share one body, leave room for all of them.
	if upload := (ctrl.InternalConfig.Storage.MaxUploadSizeInMB << 20) * 4; limit < upload {
		limit = upload
	}
	if limit <= 0 {
		limit = constvars.ReportMultipartMemoryInBytes
	}
	return limit
}

func (ctrl *ReportController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func (ctrl *ReportController) handleUsecaseError(w http.ResponseWriter, operation, requestID string, err error) {
	ctrl.Log.Error(operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func fileTooLarge(header *multipart.FileHeader) error {
	return fmt.Errorf("%s has %d bytes", header.Filename, header.Size)
}
