package croplog

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const exportSheet = "Crop Logs"

// ExportWorkbook renders every crop log the user owns into an xlsx workbook.
func (s *CropLogServiceImpl) ExportWorkbook(ctx context.Context, userID primitive.ObjectID) (*excelize.File, error) {
	logs, err := s.Repo.FindAllOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Crop", "Variety", "Area", "Unit", "Planting Date", "Status",
		"Seeds", "Fertilizers", "Pesticides", "Labor", "Irrigation", "Other",
		"Total Expenses", "Revenue", "Notes",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, log := range logs {
		values := []interface{}{
			log.CropName,
			log.Variety,
			log.Area,
			log.Unit,
			log.PlantingDate.Format("2006-01-02"),
			string(log.Status),
			log.Expenses.Seeds,
			log.Expenses.Fertilizers,
			log.Expenses.Pesticides,
			log.Expenses.Labor,
			log.Expenses.Irrigation,
			log.Expenses.Other,
			log.Expenses.Total,
			log.Revenue,
			log.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	return f, nil
}
