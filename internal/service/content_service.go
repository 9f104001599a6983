package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/client"
	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/metrics"
	"stratoview-taxonomy-api/internal/repository"
	"stratoview-taxonomy-api/internal/response"
	"stratoview-taxonomy-api/internal/validation"
)

// ContentService defines the business logic for content items and their
// extensions. Creation and update run two-phase: every field-level
// violation is collected first, then business rules reject the write as
// a whole, and only a fully valid aggregate reaches the repository.
type ContentService interface {
	CreateContent(ctx context.Context, req *dto.CreateContentRequest, creatorID uuid.UUID) (*dto.ContentResponse, error)
	GetContent(ctx context.Context, id, requesterID uuid.UUID) (*dto.ContentResponse, error)
	ListContents(ctx context.Context, filters repository.ContentFilters, requesterID uuid.UUID) (*dto.ContentListResponse, error)
	UpdateContent(ctx context.Context, id uuid.UUID, req *dto.UpdateContentRequest, requesterID uuid.UUID) (*dto.ContentResponse, error)
	DeleteContent(ctx context.Context, id, requesterID uuid.UUID) error

	UploadImage(ctx context.Context, imageKind, fileName string, fileSize int64, file io.Reader, contentType string) (*dto.UploadedImageResponse, error)
	AttachScenarioImage(ctx context.Context, contentID uuid.UUID, fileName string, fileSize int64, file io.Reader, contentType string, requesterID uuid.UUID) (*dto.ScenarioImageResponse, error)
	DeleteScenarioImage(ctx context.Context, contentID, imageID, requesterID uuid.UUID) error
}

// contentServiceImpl is the implementation of ContentService
type contentServiceImpl struct {
	contentRepo  repository.ContentRepository
	userRepo     repository.UserRepository
	taxonomyRepo repository.TaxonomyRepository
	storage      client.StorageClient
	metrics      *metrics.Metrics
	logger       *zap.Logger

	// now is injected so date-window rules are deterministic under test
	now func() time.Time
}

// NewContentService creates a new instance of ContentService.
// storage may be nil; image operations then fail with a clear error.
func NewContentService(contentRepo repository.ContentRepository, userRepo repository.UserRepository, taxonomyRepo repository.TaxonomyRepository, storage client.StorageClient, m *metrics.Metrics, logger *zap.Logger) ContentService {
	return &contentServiceImpl{
		contentRepo:  contentRepo,
		userRepo:     userRepo,
		taxonomyRepo: taxonomyRepo,
		storage:      storage,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateContent creates a content item together with its extension record
func (s *contentServiceImpl) CreateContent(ctx context.Context, req *dto.CreateContentRequest, creatorID uuid.UUID) (*dto.ContentResponse, error) {
	creator, err := s.userRepo.FindByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", creatorID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve creator", err.Error())
	}

	isAdmin := creator.UserType == domain.UserTypeAdmin
	source := domain.SourceUserCreated
	visibility := domain.Visibility(req.Visibility)
	if isAdmin {
		source = domain.SourceCompany
	}

	content := &domain.Content{
		CreatorID:          creatorID,
		ContentType:        domain.ContentType(req.ContentType),
		Titolo:             req.Titolo,
		DescrizioneBreve:   req.DescrizioneBreve,
		DescrizioneEstesa:  req.DescrizioneEstesa,
		IsCompanyGenerated: isAdmin,
		Visibility:         visibility,
		ContentSource:      source,
		IntelligenceAreaID: req.IntelligenceArea,
		TopicAreaID:        req.TopicArea,
		Themes:             datatypes.NewJSONSlice(req.Themes),
		GeographicCoverage: datatypes.NewJSONSlice(req.GeographicCoverage),
	}

	errs := content.ValidateFields()
	s.validateTaxonomyRefs(ctx, content, errs)

	extensionErr := s.buildExtension(content, req.Index, req.Scenario, req.TrendRadar, req.ParticipatoryData, errs)
	if extensionErr != nil {
		return nil, extensionErr
	}
	if errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid content", errs.Fields())
	}

	if err := content.ValidateBusinessRules(); err != nil {
		return nil, response.NewValidationError(businessRuleMessage(err), "")
	}
	if content.TrendRadar != nil {
		if err := content.TrendRadar.ValidateTimeReference(s.now().Year()); err != nil {
			return nil, response.NewValidationError(businessRuleMessage(err), "")
		}
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create content", err.Error())
	}

	s.metrics.IncrementContentCreated()
	s.logger.Info("Content created",
		zap.String("content_id", content.ID.String()),
		zap.String("content_type", string(content.ContentType)),
		zap.String("creator_id", creatorID.String()))

	created, err := s.contentRepo.FindByID(ctx, content.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created content", err.Error())
	}
	resp := dto.ToContentResponse(created, s.urlResolver())
	return &resp, nil
}

// GetContent finds a content item. Private content is visible only to
// its creator and to admins.
func (s *contentServiceImpl) GetContent(ctx context.Context, id, requesterID uuid.UUID) (*dto.ContentResponse, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Content not found", id.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get content", err.Error())
	}

	if content.Visibility == domain.VisibilityPrivate && content.CreatorID != requesterID {
		requester, err := s.userRepo.FindByID(ctx, requesterID)
		if err != nil || requester.UserType != domain.UserTypeAdmin {
			return nil, response.NewNotFoundError("Content not found", id.String())
		}
	}

	resp := dto.ToContentResponse(content, s.urlResolver())
	return &resp, nil
}

// ListContents lists content visible to the requester: public items plus
// the requester's own, everything for admins.
func (s *contentServiceImpl) ListContents(ctx context.Context, filters repository.ContentFilters, requesterID uuid.UUID) (*dto.ContentListResponse, error) {
	requester, err := s.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", requesterID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve requester", err.Error())
	}

	contents, err := s.contentRepo.List(ctx, filters)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list contents", err.Error())
	}

	resolve := s.urlResolver()
	result := make([]dto.ContentResponse, 0, len(contents))
	for _, content := range contents {
		if requester.UserType != domain.UserTypeAdmin &&
			content.Visibility == domain.VisibilityPrivate &&
			content.CreatorID != requesterID {
			continue
		}
		result = append(result, dto.ToContentResponse(content, resolve))
	}

	return &dto.ContentListResponse{Contents: result, Total: len(result)}, nil
}

// UpdateContent updates a content item. The content type is immutable;
// an extension payload, when present, must match the stored type.
func (s *contentServiceImpl) UpdateContent(ctx context.Context, id uuid.UUID, req *dto.UpdateContentRequest, requesterID uuid.UUID) (*dto.ContentResponse, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Content not found", id.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get content", err.Error())
	}

	if err := s.requireOwnerOrAdmin(ctx, content.CreatorID, requesterID); err != nil {
		return nil, err
	}

	if req.Titolo != nil {
		content.Titolo = *req.Titolo
	}
	if req.DescrizioneBreve != nil {
		content.DescrizioneBreve = *req.DescrizioneBreve
	}
	if req.DescrizioneEstesa != nil {
		content.DescrizioneEstesa = *req.DescrizioneEstesa
	}
	if req.Visibility != nil {
		content.Visibility = domain.Visibility(*req.Visibility)
	}
	if req.IntelligenceArea != nil {
		content.IntelligenceAreaID = *req.IntelligenceArea
		content.IntelligenceArea = nil
	}
	if req.TopicArea != nil {
		if *req.TopicArea == "" {
			content.TopicAreaID = nil
		} else {
			content.TopicAreaID = req.TopicArea
		}
		content.TopicArea = nil
	}
	if req.Themes != nil {
		content.Themes = datatypes.NewJSONSlice(req.Themes)
	}
	if req.GeographicCoverage != nil {
		content.GeographicCoverage = datatypes.NewJSONSlice(req.GeographicCoverage)
	}

	errs := content.ValidateFields()
	s.validateTaxonomyRefs(ctx, content, errs)

	if err := s.applyExtensionUpdate(content, req, errs); err != nil {
		return nil, err
	}
	if errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid content", errs.Fields())
	}

	if err := content.ValidateBusinessRules(); err != nil {
		return nil, response.NewValidationError(businessRuleMessage(err), "")
	}
	if content.TrendRadar != nil {
		if err := content.TrendRadar.ValidateTimeReference(s.now().Year()); err != nil {
			return nil, response.NewValidationError(businessRuleMessage(err), "")
		}
	}

	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update content", err.Error())
	}

	updated, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load updated content", err.Error())
	}
	resp := dto.ToContentResponse(updated, s.urlResolver())
	return &resp, nil
}

// DeleteContent removes a content item and its extension. Stored images
// are deleted from the storage backend best-effort; scenario images go
// through the soft-delete purge cycle instead.
func (s *contentServiceImpl) DeleteContent(ctx context.Context, id, requesterID uuid.UUID) error {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Content not found", id.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to get content", err.Error())
	}

	if err := s.requireOwnerOrAdmin(ctx, content.CreatorID, requesterID); err != nil {
		return err
	}

	if content.Scenario != nil {
		for _, img := range content.Scenario.Images {
			if err := s.contentRepo.MarkScenarioImageDeleted(ctx, img.ID); err != nil {
				s.logger.Warn("Failed to mark scenario image for purge",
					zap.String("image_id", img.ID.String()), zap.Error(err))
			}
		}
	}

	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete content", err.Error())
	}

	if s.storage != nil {
		if content.TrendRadar != nil && content.TrendRadar.RadarImageKey != "" {
			if err := s.storage.DeleteFile(ctx, content.TrendRadar.RadarImageKey); err != nil {
				s.logger.Warn("Failed to delete radar image", zap.String("key", content.TrendRadar.RadarImageKey), zap.Error(err))
			}
		}
		if content.ParticipatoryData != nil && content.ParticipatoryData.VisualizationKey != "" {
			if err := s.storage.DeleteFile(ctx, content.ParticipatoryData.VisualizationKey); err != nil {
				s.logger.Warn("Failed to delete visualization image", zap.String("key", content.ParticipatoryData.VisualizationKey), zap.Error(err))
			}
		}
	}

	s.logger.Info("Content deleted",
		zap.String("content_id", id.String()),
		zap.String("content_type", string(content.ContentType)))
	return nil
}

// UploadImage validates and stores a standalone image, returning the key
// to reference from a subsequent content create or update. imageKind
// selects the key prefix and the allowed extensions.
func (s *contentServiceImpl) UploadImage(ctx context.Context, imageKind, fileName string, fileSize int64, file io.Reader, contentType string) (*dto.UploadedImageResponse, error) {
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "File storage is not configured", "")
	}

	allowed, err := allowedExtensions(imageKind)
	if err != nil {
		return nil, err
	}

	errs := validation.NewErrors()
	errs.AddIf("file", validation.FileSize(fileSize))
	errs.AddIf("file", validation.FileExtension(fileName, allowed))
	if errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid image file", errs.Fields())
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	key, err := s.storage.GenerateFileKey(imageKind, uuid.New().String(), ext)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate file key", err.Error())
	}
	if _, err := s.storage.UploadFile(ctx, key, file, contentType); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload image", err.Error())
	}

	return &dto.UploadedImageResponse{
		FileKey:      key,
		URL:          s.storage.GetFileURL(key),
		OriginalName: fileName,
		FileSize:     fileSize,
		UploadDate:   s.now().UTC().Format(time.RFC3339),
	}, nil
}

// AttachScenarioImage uploads an image and attaches it to an existing
// scenario content item.
func (s *contentServiceImpl) AttachScenarioImage(ctx context.Context, contentID uuid.UUID, fileName string, fileSize int64, file io.Reader, contentType string, requesterID uuid.UUID) (*dto.ScenarioImageResponse, error) {
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "File storage is not configured", "")
	}

	content, err := s.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Content not found", contentID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get content", err.Error())
	}
	if content.Scenario == nil {
		return nil, response.NewValidationError("Content is not a scenario", string(content.ContentType))
	}
	if err := s.requireOwnerOrAdmin(ctx, content.CreatorID, requesterID); err != nil {
		return nil, err
	}

	errs := validation.NewErrors()
	errs.AddIf("file", validation.FileSize(fileSize))
	errs.AddIf("file", validation.FileExtension(fileName, domain.AllowedScenarioImageExtensions))
	if errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid image file", errs.Fields())
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	key, err := s.storage.GenerateFileKey(client.ImageKindScenario, contentID.String(), ext)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate file key", err.Error())
	}
	if _, err := s.storage.UploadFile(ctx, key, file, contentType); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload image", err.Error())
	}

	image := &domain.ScenarioImage{
		ScenarioID:   content.ID,
		FileKey:      key,
		OriginalName: fileName,
		FileSize:     fileSize,
	}
	if err := s.contentRepo.CreateScenarioImage(ctx, image); err != nil {
		if delErr := s.storage.DeleteFile(ctx, key); delErr != nil {
			s.logger.Warn("Failed to clean up orphaned upload", zap.String("key", key), zap.Error(delErr))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record scenario image", err.Error())
	}

	return &dto.ScenarioImageResponse{
		ID:           image.ID,
		FileKey:      image.FileKey,
		URL:          s.storage.GetFileURL(image.FileKey),
		OriginalName: image.OriginalName,
		FileSize:     image.FileSize,
		UploadDate:   image.UploadDate.UTC().Format(time.RFC3339),
	}, nil
}

// DeleteScenarioImage marks a scenario image deleted. The purge job
// removes the stored object and the row afterwards.
func (s *contentServiceImpl) DeleteScenarioImage(ctx context.Context, contentID, imageID, requesterID uuid.UUID) error {
	content, err := s.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Content not found", contentID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to get content", err.Error())
	}
	if err := s.requireOwnerOrAdmin(ctx, content.CreatorID, requesterID); err != nil {
		return err
	}

	image, err := s.contentRepo.FindScenarioImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Scenario image not found", imageID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to get scenario image", err.Error())
	}
	if image.ScenarioID != contentID {
		return response.NewNotFoundError("Scenario image not found", imageID.String())
	}

	if err := s.contentRepo.MarkScenarioImageDeleted(ctx, imageID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete scenario image", err.Error())
	}
	return nil
}

// buildExtension validates the tagged-union payload on create: exactly
// one payload must be present and it must match the declared content
// type. Field errors land in errs; structural violations reject the
// request immediately.
func (s *contentServiceImpl) buildExtension(content *domain.Content, index *dto.IndexPayload, scenario *dto.ScenarioPayload, trendRadar *dto.TrendRadarPayload, participatory *dto.ParticipatoryDataPayload, errs *validation.Errors) error {
	present := 0
	if index != nil {
		present++
	}
	if scenario != nil {
		present++
	}
	if trendRadar != nil {
		present++
	}
	if participatory != nil {
		present++
	}
	if present != 1 {
		return response.NewValidationError("Exactly one extension payload is required", "")
	}

	switch content.ContentType {
	case domain.ContentTypeIndex:
		if index == nil {
			return response.NewValidationError("Extension payload does not match content type", string(content.ContentType))
		}
		content.Index = buildIndex(index)
		errs.Merge(content.Index.ValidateFields())
	case domain.ContentTypeScenario:
		if scenario == nil {
			return response.NewValidationError("Extension payload does not match content type", string(content.ContentType))
		}
		content.Scenario = buildScenario(scenario)
		errs.Merge(content.Scenario.ValidateFields())
	case domain.ContentTypeTrendRadar:
		if trendRadar == nil {
			return response.NewValidationError("Extension payload does not match content type", string(content.ContentType))
		}
		content.TrendRadar = buildTrendRadar(trendRadar)
		errs.Merge(content.TrendRadar.ValidateFields())
	case domain.ContentTypeParticipatoryData:
		if participatory == nil {
			return response.NewValidationError("Extension payload does not match content type", string(content.ContentType))
		}
		ext, err := buildParticipatoryData(participatory)
		if err != nil {
			errs.Add("collection_date", "invalid date, expected YYYY-MM-DD")
			return nil
		}
		content.ParticipatoryData = ext
		errs.Merge(content.ParticipatoryData.ValidateFields(s.now()))
	}
	return nil
}

// applyExtensionUpdate applies an extension payload on update. At most
// one payload may be present and it must match the stored content type.
func (s *contentServiceImpl) applyExtensionUpdate(content *domain.Content, req *dto.UpdateContentRequest, errs *validation.Errors) error {
	present := 0
	if req.Index != nil {
		present++
	}
	if req.Scenario != nil {
		present++
	}
	if req.TrendRadar != nil {
		present++
	}
	if req.ParticipatoryData != nil {
		present++
	}
	if present == 0 {
		switch {
		case content.Scenario != nil:
			errs.Merge(content.Scenario.ValidateFields())
		case content.TrendRadar != nil:
			errs.Merge(content.TrendRadar.ValidateFields())
		case content.ParticipatoryData != nil:
			errs.Merge(content.ParticipatoryData.ValidateFields(s.now()))
		case content.Index != nil:
			errs.Merge(content.Index.ValidateFields())
		}
		return nil
	}
	if present > 1 {
		return response.NewValidationError("At most one extension payload is allowed", "")
	}

	switch content.ContentType {
	case domain.ContentTypeIndex:
		if req.Index == nil {
			return response.NewValidationError("Extension payload does not match content type", string(content.ContentType))
		}
		ext := buildIndex(req.Index)
		ext.ContentID = content.ID
		content.Index = ext
		errs.Merge(content.Index.ValidateFields())
	case domain.ContentTypeScenario:
		if req.Scenario == nil {
			return response.NewValidationError("Extension payload does not match content type", string(content.ContentType))
		}
		ext := buildScenario(req.Scenario)
		ext.ContentID = content.ID
		ext.Images = nil
		content.Scenario = ext
		errs.Merge(content.Scenario.ValidateFields())
	case domain.ContentTypeTrendRadar:
		if req.TrendRadar == nil {
			return response.NewValidationError("Extension payload does not match content type", string(content.ContentType))
		}
		ext := buildTrendRadar(req.TrendRadar)
		ext.ContentID = content.ID
		content.TrendRadar = ext
		errs.Merge(content.TrendRadar.ValidateFields())
	case domain.ContentTypeParticipatoryData:
		if req.ParticipatoryData == nil {
			return response.NewValidationError("Extension payload does not match content type", string(content.ContentType))
		}
		ext, err := buildParticipatoryData(req.ParticipatoryData)
		if err != nil {
			errs.Add("collection_date", "invalid date, expected YYYY-MM-DD")
			return nil
		}
		ext.ContentID = content.ID
		content.ParticipatoryData = ext
		errs.Merge(content.ParticipatoryData.ValidateFields(s.now()))
	}
	return nil
}

// validateTaxonomyRefs checks that every referenced taxonomy entry
// exists and is usable, adding violations to errs.
func (s *contentServiceImpl) validateTaxonomyRefs(ctx context.Context, content *domain.Content, errs *validation.Errors) {
	if content.IntelligenceAreaID != "" {
		area, err := s.taxonomyRepo.FindIntelligenceArea(ctx, content.IntelligenceAreaID)
		if err != nil {
			errs.Add("intelligence_area", "unknown intelligence area")
		} else if !area.IsActive {
			errs.Add("intelligence_area", "intelligence area is not active")
		}
	}
	if content.TopicAreaID != nil && *content.TopicAreaID != "" {
		if _, err := s.taxonomyRepo.FindTopicArea(ctx, *content.TopicAreaID); err != nil {
			errs.Add("topic_area", "unknown topic area")
		}
	}
	if len(content.GeographicCoverage) > 0 {
		found, err := s.taxonomyRepo.FindGeographicAreas(ctx, content.GeographicCoverage)
		if err != nil {
			errs.Add("geographic_coverage", "failed to resolve geographic areas")
			return
		}
		known := make(map[string]bool, len(found))
		for _, area := range found {
			known[area.ID] = true
		}
		for _, slug := range content.GeographicCoverage {
			if !known[slug] {
				errs.Add("geographic_coverage", "unknown geographic area: "+slug)
			}
		}
	}
}

// requireOwnerOrAdmin rejects requesters that neither own the resource
// nor hold the admin role.
func (s *contentServiceImpl) requireOwnerOrAdmin(ctx context.Context, ownerID, requesterID uuid.UUID) error {
	if ownerID == requesterID {
		return nil
	}
	requester, err := s.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		return response.NewForbiddenError("Not allowed to modify this content", "")
	}
	if requester.UserType != domain.UserTypeAdmin {
		return response.NewForbiddenError("Not allowed to modify this content", "")
	}
	return nil
}

// urlResolver adapts the storage client into the DTO layer's resolver
func (s *contentServiceImpl) urlResolver() dto.URLResolver {
	if s.storage == nil {
		return nil
	}
	return s.storage.GetFileURL
}

func buildIndex(p *dto.IndexPayload) *domain.Index {
	ext := &domain.Index{
		IndexType:            domain.IndexType(p.IndexType),
		DataLevel:            domain.DataLevel(p.DataLevel),
		CalculationFormula:   p.CalculationFormula,
		GeographicResolution: domain.GeographicResolution(p.GeographicResolution),
		HasMapView:           true,
		HasIndexView:         true,
		HasDataVizView:       true,
		DefaultViewMode:      domain.ViewModeMap,
	}
	if p.HasMapView != nil {
		ext.HasMapView = *p.HasMapView
	}
	if p.HasIndexView != nil {
		ext.HasIndexView = *p.HasIndexView
	}
	if p.HasDataVizView != nil {
		ext.HasDataVizView = *p.HasDataVizView
	}
	if p.DefaultViewMode != "" {
		ext.DefaultViewMode = domain.ViewMode(p.DefaultViewMode)
	}
	return ext
}

func buildScenario(p *dto.ScenarioPayload) *domain.Scenario {
	ext := &domain.Scenario{
		Probabilita:    domain.ProbabilityBucket(p.Probabilita),
		ScenarioText:   p.ScenarioText,
		ScenarioFormat: "html",
	}
	if p.ScenarioFormat != "" {
		ext.ScenarioFormat = p.ScenarioFormat
	}
	return ext
}

func buildTrendRadar(p *dto.TrendRadarPayload) *domain.TrendRadar {
	return &domain.TrendRadar{
		TimeMonth:        p.TimeMonth,
		TimeYear:         p.TimeYear,
		RadarImageKey:    p.RadarImageKey,
		OriginalFilename: p.OriginalFilename,
		RadarFormat:      "image",
		RadarData:        datatypes.JSON(p.RadarData),
	}
}

func buildParticipatoryData(p *dto.ParticipatoryDataPayload) (*domain.ParticipatoryData, error) {
	collectionDate, err := time.Parse("2006-01-02", p.CollectionDate)
	if err != nil {
		return nil, err
	}
	return &domain.ParticipatoryData{
		CollectionDate:   collectionDate,
		DataFormat:       "visualization",
		VisualizationKey: p.VisualizationKey,
		OriginalFilename: p.OriginalFilename,
		Methodology:      p.Methodology,
	}, nil
}

// allowedExtensions maps an image kind to its accepted file extensions
func allowedExtensions(imageKind string) ([]string, error) {
	switch imageKind {
	case client.ImageKindScenario:
		return domain.AllowedScenarioImageExtensions, nil
	case client.ImageKindTrendRadar:
		return domain.AllowedRadarImageExtensions, nil
	case client.ImageKindParticipatory:
		return domain.AllowedVisualizationExtensions, nil
	default:
		return nil, response.NewValidationError("Unknown image kind", imageKind)
	}
}

// businessRuleMessage maps domain rule violations to API messages
func businessRuleMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrCustomerContentMustBePrivate):
		return "Customer-created content must be private"
	case errors.Is(err, domain.ErrIndexRequiresAdmin):
		return "Only administrators can create index content"
	case errors.Is(err, domain.ErrTimeYearTooFarFuture):
		return "Time reference cannot be more than 2 years in the future"
	case errors.Is(err, domain.ErrTimeYearTooFarPast):
		return "Time reference cannot be more than 5 years in the past"
	default:
		return err.Error()
	}
}
