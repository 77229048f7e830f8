package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/models"
	"github.com/MEETT007/Shoe-App-Backend/store"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

// ExportProductsToExcel streams the full catalog, soft-deleted rows included,
// as an .xlsx download. Admin-side accounting, hence the unfiltered read.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := store.Unfiltered(db).Find(&products).Error; err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}

		headers := []string{
			"ID", "Name", "Brand", "Category", "Description", "Price",
			"DiscountPrice", "Sizes", "Colors", "Gender", "DeletedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.DiscountPrice)
			row.AddCell().SetValue(joinInts(p.Sizes))
			row.AddCell().SetValue(strings.Join(p.Colors, ","))
			row.AddCell().SetValue(p.Gender)
			if p.DeletedAt != nil {
				row.AddCell().SetValue(p.DeletedAt.Format("2006-01-02 15:04:05"))
			} else {
				row.AddCell().SetValue("")
			}
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
	}
}

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// .xlsx. Rows with an ID update that product; rows without create a new one.
// Malformed rows are counted and skipped, not fatal.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			utils.Fail(c, apperr.BadRequest("Excel file is required"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, fileHeader.Size)
		if err != nil {
			utils.Fail(c, apperr.BadRequest("Failed to parse Excel file"))
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			utils.Fail(c, apperr.BadRequest("Excel file is empty or missing header row"))
			return
		}

		sheet := xlFile.Sheets[0]
		created, updated, skipped := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(1)
			price, priceErr := strconv.ParseFloat(get(5), 64)
			if name == "" || priceErr != nil {
				skipped++
				continue
			}
			discountPrice, _ := strconv.ParseFloat(get(6), 64)

			product := models.Product{
				Name:          name,
				Brand:         get(2),
				Category:      get(3),
				Description:   get(4),
				Price:         price,
				DiscountPrice: discountPrice,
				Sizes:         splitInts(get(7)),
				Colors:        splitStrings(get(8)),
				Gender:        strings.ToLower(get(9)),
			}

			if idStr := get(0); idStr != "" {
				id, err := strconv.ParseUint(idStr, 10, 64)
				if err != nil {
					skipped++
					continue
				}
				product.ID = uint(id)
				if err := db.Save(&product).Error; err != nil {
					skipped++
					continue
				}
				updated++
			} else {
				if err := db.Create(&product).Error; err != nil {
					skipped++
					continue
				}
				created++
			}
		}

		utils.Success(c, http.StatusOK, gin.H{
			"message": "Import finished",
			"data": gin.H{
				"created": created,
				"updated": updated,
				"skipped": skipped,
			},
		})
	}
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

func splitInts(value string) []int {
	var out []int
	for _, part := range strings.Split(value, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func splitStrings(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
