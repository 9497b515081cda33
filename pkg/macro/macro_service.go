package macro

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/entities"
	"github.com/macromate/macromate-backend/internal/utils"
	"github.com/macromate/macromate-backend/internal/utils/storage"
	"github.com/macromate/macromate-backend/pkg/nutrition"
)

const (
	maxRangeDays     = 30
	defaultRangeDays = 3

	imageFallbackLabel = "Unknown food item"
	testDescription    = "100g grilled chicken breast with 150g steamed broccoli"
)

type (
	MacroService interface {
		CalculateMacros(ctx context.Context, req domain.CalculateMacrosRequest) (domain.CalculateMacrosResponse, error)
		CalculateImageMacros(ctx context.Context, req domain.CalculateImageMacrosRequest) (domain.CalculateMacrosResponse, error)
		CalculateBarcodeMacros(ctx context.Context, req domain.BarcodeMacrosRequest) (domain.BarcodeMacrosResponse, error)
		GetDayMacros(ctx context.Context, userID, date string) (domain.DayMacrosResponse, error)
		GetPastMacros(ctx context.Context, userID string, days int) (domain.PastMacrosResponse, error)
		DeleteLog(ctx context.Context, logID, userID string) (domain.MacroLogResponse, error)
		RelogMacro(ctx context.Context, req domain.RelogMacroRequest) (domain.MacroLogResponse, error)
		TestService(ctx context.Context) (domain.MacroRecord, error)
	}

	macroService struct {
		macroRepository MacroRepository
		extractor       Extractor
		nutritionClient nutrition.Client
		s3              storage.AwsS3
	}
)

func NewMacroService(macroRepository MacroRepository, extractor Extractor, nutritionClient nutrition.Client, s3 storage.AwsS3) MacroService {
	return &macroService{
		macroRepository: macroRepository,
		extractor:       extractor,
		nutritionClient: nutritionClient,
		s3:              s3,
	}
}

func (s *macroService) CalculateMacros(ctx context.Context, req domain.CalculateMacrosRequest) (domain.CalculateMacrosResponse, error) {
	rawText, err := s.extractor.ExtractFromText(ctx, req.FoodDescription)
	if err != nil {
		// Extraction failure degrades to the zero record; the zero
		// check below turns it into a user-facing rejection.
		log.Warnf("macro extraction failed: %v", err)
		rawText = ""
	}

	record := Normalize(rawText, req.FoodDescription)
	if record.ProteinG == 0 && record.CarbsG == 0 && record.FatsG == 0 {
		return domain.CalculateMacrosResponse{}, domain.ErrZeroMacros
	}

	saved, err := s.saveRecord(ctx, req.UserID, record, "")
	if err != nil {
		return domain.CalculateMacrosResponse{}, err
	}

	return domain.CalculateMacrosResponse{
		MacroRecord: record,
		ID:          saved.ID.String(),
		Date:        saved.LogDate,
		MealTime:    saved.MealTime.Format(time.RFC3339),
	}, nil
}

func (s *macroService) CalculateImageMacros(ctx context.Context, req domain.CalculateImageMacrosRequest) (domain.CalculateMacrosResponse, error) {
	file, err := req.Image.Open()
	if err != nil {
		return domain.CalculateMacrosResponse{}, err
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return domain.CalculateMacrosResponse{}, err
	}

	mimeType := utils.DetectImageMimeType(imageData, req.Image.Header.Get("Content-Type"))
	if !utils.IsValidImageMimeType(mimeType) {
		return domain.CalculateMacrosResponse{}, domain.ErrInvalidImageType
	}

	rawText, err := s.extractor.ExtractFromImage(ctx, imageData, mimeType, req.Weight)
	if err != nil {
		log.Warnf("image macro extraction failed: %v", err)
		rawText = ""
	}

	record := Normalize(rawText, imageFallbackLabel)
	if record.ProteinG == 0 && record.CarbsG == 0 && record.FatsG == 0 {
		return domain.CalculateMacrosResponse{}, domain.ErrZeroMacros
	}

	// The photo is kept alongside the log entry. Storage trouble is not
	// worth failing the request over.
	imageURL := ""
	fileName := fmt.Sprintf("meal-%s", uuid.New().String())
	if objectKey, uploadErr := s.s3.UploadFile(fileName, req.Image, "meals", storage.AllowImage...); uploadErr != nil {
		log.Warnf("meal photo upload failed: %v", uploadErr)
	} else {
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	saved, err := s.saveRecord(ctx, req.UserID, record, imageURL)
	if err != nil {
		return domain.CalculateMacrosResponse{}, err
	}

	return domain.CalculateMacrosResponse{
		MacroRecord: record,
		ID:          saved.ID.String(),
		Date:        saved.LogDate,
		MealTime:    saved.MealTime.Format(time.RFC3339),
	}, nil
}

func (s *macroService) CalculateBarcodeMacros(ctx context.Context, req domain.BarcodeMacrosRequest) (domain.BarcodeMacrosResponse, error) {
	barcode := strings.TrimSpace(req.Barcode)
	if err := nutrition.ValidateBarcode(barcode); err != nil {
		return domain.BarcodeMacrosResponse{}, err
	}

	product, err := s.nutritionClient.GetProduct(ctx, barcode)
	if err != nil {
		return domain.BarcodeMacrosResponse{}, err
	}

	record, err := product.ScaleToWeight(nutrition.ParseWeight(req.Weight))
	if err != nil {
		return domain.BarcodeMacrosResponse{}, err
	}

	saved, err := s.saveRecord(ctx, req.UserID, record, "")
	if err != nil {
		return domain.BarcodeMacrosResponse{}, err
	}

	return domain.BarcodeMacrosResponse{
		ID:       saved.ID.String(),
		FoodItem: saved.FoodItem,
		Protein:  saved.ProteinG,
		Carbs:    saved.CarbsG,
		Fats:     saved.FatsG,
		Calories: saved.Calories,
		Date:     saved.LogDate,
		MealTime: saved.MealTime.Format(time.RFC3339),
	}, nil
}

func (s *macroService) GetDayMacros(ctx context.Context, userID, date string) (domain.DayMacrosResponse, error) {
	logs, err := s.macroRepository.GetLogsForDate(ctx, userID, date)
	if err != nil {
		return domain.DayMacrosResponse{}, err
	}

	meals := make([]domain.MacroLogResponse, 0, len(logs))
	for _, entry := range logs {
		meals = append(meals, logResponse(entry))
	}

	return domain.DayMacrosResponse{
		Date:        date,
		TotalMacros: AggregateDay(logs),
		Meals:       meals,
	}, nil
}

func (s *macroService) GetPastMacros(ctx context.Context, userID string, days int) (domain.PastMacrosResponse, error) {
	if days < 1 {
		days = defaultRangeDays
	}
	if days > maxRangeDays {
		return domain.PastMacrosResponse{}, domain.ErrInvalidDaysParam
	}

	now := time.Now().UTC()
	endDate := now.Format("2006-01-02")
	startDate := now.AddDate(0, 0, -days).Format("2006-01-02")

	logs, err := s.macroRepository.GetLogsInRange(ctx, userID, startDate, endDate)
	if err != nil {
		return domain.PastMacrosResponse{}, err
	}

	return domain.PastMacrosResponse{
		Days:           days,
		DailySummaries: AggregateRange(logs),
	}, nil
}

func (s *macroService) DeleteLog(ctx context.Context, logID, userID string) (domain.MacroLogResponse, error) {
	deleted, err := s.macroRepository.DeleteLog(ctx, logID, userID)
	if err != nil {
		return domain.MacroLogResponse{}, err
	}

	if deleted.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(deleted.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return logResponse(deleted), nil
}

func (s *macroService) RelogMacro(ctx context.Context, req domain.RelogMacroRequest) (domain.MacroLogResponse, error) {
	record := domain.MacroRecord{
		ProteinG:       *req.Protein,
		CarbsG:         *req.Carbs,
		FatsG:          *req.Fats,
		Calories:       *req.Calories,
		ParsedFoodItem: req.FoodItem,
	}

	saved, err := s.saveRecord(ctx, req.UserID, record, "")
	if err != nil {
		return domain.MacroLogResponse{}, err
	}
	return logResponse(saved), nil
}

func (s *macroService) TestService(ctx context.Context) (domain.MacroRecord, error) {
	rawText, err := s.extractor.ExtractFromText(ctx, testDescription)
	if err != nil {
		return domain.MacroRecord{}, err
	}
	return Normalize(rawText, testDescription), nil
}

func (s *macroService) saveRecord(ctx context.Context, userID string, record domain.MacroRecord, imageURL string) (*entities.MacroLog, error) {
	now := time.Now().UTC()
	entry := &entities.MacroLog{
		ID:       uuid.New(),
		UserID:   userID,
		LogDate:  now.Format("2006-01-02"),
		MealTime: now,
		FoodItem: record.ParsedFoodItem,
		ProteinG: Round1(record.ProteinG),
		CarbsG:   Round1(record.CarbsG),
		FatsG:    Round1(record.FatsG),
		Calories: Round1(record.Calories),
		ImageURL: imageURL,
	}

	if err := s.macroRepository.CreateLog(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func logResponse(entry *entities.MacroLog) domain.MacroLogResponse {
	return domain.MacroLogResponse{
		ID:       entry.ID.String(),
		FoodItem: entry.FoodItem,
		Protein:  entry.ProteinG,
		Carbs:    entry.CarbsG,
		Fats:     entry.FatsG,
		Calories: entry.Calories,
		MealTime: entry.MealTime.Format(time.RFC3339),
		Date:     entry.LogDate,
	}
}
