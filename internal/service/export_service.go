package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"schedule-management/backend/internal/model"
	"schedule-management/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoDepartments = errors.New("暂无院系数据")
	ErrExportGenerateFail  = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportDepartments 导出院系及其专业方向为 Excel
	ExportDepartments(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// 工作表名称
const (
	sheetDepartments = "院系"
	sheetStudySpecs  = "专业方向"
)

// ═══════════════════════════════════════════════════════════
// ExportDepartments 导出院系目录
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "院系"：名称 | 别名 | 专业方向数
//   - Sheet "专业方向"：院系 | 名称 | 别名 | 学习形式 | 学位层次 | 展示名
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportDepartments(ctx context.Context) (*bytes.Buffer, string, error) {
	depts, err := s.repo.Department.ListWithStudySpecs(ctx)
	if err != nil {
		s.logger.Error("查询院系目录失败", zap.Error(err))
		return nil, "", err
	}
	if len(depts) == 0 {
		return nil, "", ErrExportNoDepartments
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeDepartmentSheet(f, depts); err != nil {
		s.logger.Error("生成院系工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	if err := s.writeStudySpecSheet(f, depts); err != nil {
		s.logger.Error("生成专业方向工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	// 删除默认 Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	if idx, err := f.GetSheetIndex(sheetDepartments); err == nil {
		f.SetActiveSheet(idx)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("departments_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

func (s *exportService) writeDepartmentSheet(f *excelize.File, depts []model.Department) error {
	if _, err := f.NewSheet(sheetDepartments); err != nil {
		return err
	}
	if err := writeHeader(f, sheetDepartments, []string{"名称", "别名", "专业方向数"}); err != nil {
		return err
	}
	f.SetColWidth(sheetDepartments, "A", "A", 32)
	f.SetColWidth(sheetDepartments, "B", "C", 12)

	for i, d := range depts {
		row := i + 2
		values := []interface{}{d.Name, d.Alias, len(d.StudySpecializations)}
		if err := f.SetSheetRow(sheetDepartments, cell("A", row), &values); err != nil {
			return err
		}
	}
	return nil
}

func (s *exportService) writeStudySpecSheet(f *excelize.File, depts []model.Department) error {
	if _, err := f.NewSheet(sheetStudySpecs); err != nil {
		return err
	}
	if err := writeHeader(f, sheetStudySpecs, []string{"院系", "名称", "别名", "学习形式", "学位层次", "展示名"}); err != nil {
		return err
	}
	f.SetColWidth(sheetStudySpecs, "A", "B", 28)
	f.SetColWidth(sheetStudySpecs, "C", "E", 12)
	f.SetColWidth(sheetStudySpecs, "F", "F", 36)

	row := 2
	for _, d := range depts {
		for i := range d.StudySpecializations {
			spec := &d.StudySpecializations[i]
			typeAlias, degreeAlias := "-", "-"
			if spec.StudyType != nil {
				typeAlias = spec.StudyType.Alias
			}
			if spec.StudyDegree != nil {
				degreeAlias = spec.StudyDegree.Alias
			}
			values := []interface{}{d.Name, spec.Name, spec.Alias, typeAlias, degreeAlias, spec.DisplayName()}
			if err := f.SetSheetRow(sheetStudySpecs, cell("A", row), &values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// ── 辅助函数 ──

func writeHeader(f *excelize.File, sheet string, titles []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	header := make([]interface{}, 0, len(titles))
	for _, t := range titles {
		header = append(header, t)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", cell(colName(len(titles)-1), 1), style)
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
