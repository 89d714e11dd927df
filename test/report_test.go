package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"FindThemAPI/internal/constant"
	"FindThemAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSubmitReport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearData()

		id := submitTestReport(t, "Jane Doe", "Springfield")
		assert.Greater(t, id, int64(0))

		rr := executeRequest(newJSONRequest(t, "GET", "/api/reports/pending", nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		pending := decodeReports(t, rr)
		if assert.Len(t, pending, 1) {
			assert.Equal(t, id, pending[0].ID)
			assert.Equal(t, "Jane Doe", pending[0].Name)
			assert.Equal(t, 30, pending[0].Age)
			assert.Equal(t, 165, pending[0].Height)
			assert.Equal(t, constant.StatusPending, pending[0].Status)
			assert.Equal(t, "alice", pending[0].SubmittedBy)
			assert.NotNil(t, pending[0].SubmittedAt)
			assert.Nil(t, pending[0].ApprovedAt)
		}

		rr = executeRequest(newJSONRequest(t, "GET", "/api/reports", nil))
		assert.Empty(t, decodeReports(t, rr))
	})

	t.Run("With Photo", func(t *testing.T) {
		clearData()

		req := newMultipartRequest(t, "/api/reports/submit", reportFields("Jane Doe", "Springfield"),
			"photo", "jane.png", []byte("not-really-a-png"))
		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusCreated, rr.Code) {
			printBody(t, rr)
		}

		pending := testRepo.Report.Pending.Load()
		if assert.Len(t, pending, 1) {
			assert.True(t, strings.HasPrefix(pending[0].Image, "data:image/png;base64,"))
		}
	})

	t.Run("Missing Fields", func(t *testing.T) {
		clearData()

		fields := reportFields("Jane Doe", "Springfield")
		delete(fields, "place")
		rr := executeRequest(newMultipartRequest(t, "/api/reports/submit", fields, "", "", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "All fields are required", decodeError(t, rr))
	})

	t.Run("Zero Age And Height", func(t *testing.T) {
		clearData()

		fields := reportFields("Jane Doe", "Springfield")
		fields["age"] = "0"
		fields["height"] = "0"
		rr := executeRequest(newMultipartRequest(t, "/api/reports/submit", fields, "", "", nil))

		if !assert.Equal(t, http.StatusCreated, rr.Code) {
			printBody(t, rr)
		}

		pending := testRepo.Report.Pending.Load()
		if assert.Len(t, pending, 1) {
			assert.Equal(t, 0, pending[0].Age)
			assert.Equal(t, 0, pending[0].Height)
		}
	})

	t.Run("Non-Numeric Age", func(t *testing.T) {
		clearData()

		fields := reportFields("Jane Doe", "Springfield")
		fields["age"] = "thirty"
		rr := executeRequest(newMultipartRequest(t, "/api/reports/submit", fields, "", "", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unique IDs", func(t *testing.T) {
		clearData()

		seen := map[int64]bool{}
		for i := 0; i < 5; i++ {
			id := submitTestReport(t, fmt.Sprintf("Person %d", i), "Springfield")
			assert.False(t, seen[id], "duplicate report id %d", id)
			seen[id] = true
		}
	})
}

func TestApproveReport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearData()

		id := submitTestReport(t, "Jane Doe", "Springfield")
		approveTestReport(t, id)

		rr := executeRequest(newJSONRequest(t, "GET", "/api/reports/pending", nil))
		assert.Empty(t, decodeReports(t, rr))

		rr = executeRequest(newJSONRequest(t, "GET", "/api/reports", nil))
		approved := decodeReports(t, rr)
		if assert.Len(t, approved, 1) {
			assert.Equal(t, id, approved[0].ID)
			assert.Equal(t, constant.StatusApproved, approved[0].Status)
			assert.NotNil(t, approved[0].ApprovedAt)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		clearData()

		rr := executeRequest(newJSONRequest(t, "POST", "/api/reports/approve/12345", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Report not found", decodeError(t, rr))
	})

	t.Run("Non-Integer ID", func(t *testing.T) {
		clearData()

		rr := executeRequest(newJSONRequest(t, "POST", "/api/reports/approve/abc", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRejectReport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearData()

		id := submitTestReport(t, "Jane Doe", "Springfield")

		rr := executeRequest(newJSONRequest(t, "POST", fmt.Sprintf("/api/reports/reject/%d", id), nil))
		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		rr = executeRequest(newJSONRequest(t, "GET", "/api/reports/pending", nil))
		assert.Empty(t, decodeReports(t, rr))

		rr = executeRequest(newJSONRequest(t, "GET", "/api/reports", nil))
		assert.Empty(t, decodeReports(t, rr))
	})

	t.Run("Not Found", func(t *testing.T) {
		clearData()

		rr := executeRequest(newJSONRequest(t, "POST", "/api/reports/reject/12345", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Report not found", decodeError(t, rr))
	})
}

func TestSearchReports(t *testing.T) {
	clearData()

	springfieldID := submitTestReport(t, "Jane Doe", "Springfield")
	shelbyvilleID := submitTestReport(t, "John Roe", "Shelbyville")
	approveTestReport(t, springfieldID)
	approveTestReport(t, shelbyvilleID)

	t.Run("Location Match Is Case-Insensitive", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(t, "GET", "/api/reports?search=spring", nil))
		reports := decodeReports(t, rr)
		if assert.Len(t, reports, 1) {
			assert.Equal(t, springfieldID, reports[0].ID)
		}
	})

	t.Run("Name Match", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(t, "GET", "/api/reports?search=ROE", nil))
		reports := decodeReports(t, rr)
		if assert.Len(t, reports, 1) {
			assert.Equal(t, shelbyvilleID, reports[0].ID)
		}
	})

	t.Run("No Match", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(t, "GET", "/api/reports?search=capital", nil))
		assert.Empty(t, decodeReports(t, rr))
	})

	t.Run("No Filter Returns All", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(t, "GET", "/api/reports", nil))
		assert.Len(t, decodeReports(t, rr), 2)
	})
}

func TestAdminUpdateReport(t *testing.T) {
	t.Run("Partial Update", func(t *testing.T) {
		clearData()

		id := submitTestReport(t, "Jane Doe", "Springfield")
		approveTestReport(t, id)

		newLocation := "Shelbyville"
		rr := executeRequest(newJSONRequest(t, "PUT", fmt.Sprintf("/api/admin/reports/%d", id), model.UpdateReportRequest{
			Location: &newLocation,
		}))

		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp model.UpdateReportResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Equal(t, "Report updated successfully", resp.Message)
		assert.Equal(t, "Shelbyville", resp.Report.Location)
		assert.Equal(t, "Jane Doe", resp.Report.Name)
		assert.Equal(t, 30, resp.Report.Age)
		assert.NotNil(t, resp.Report.UpdatedAt)

		report, found := testRepo.Report.FindApproved(id)
		assert.True(t, found)
		assert.Equal(t, "Shelbyville", report.Location)
		assert.Equal(t, 165, report.Height)
	})

	t.Run("Not Found", func(t *testing.T) {
		clearData()

		name := "Jane Doe"
		rr := executeRequest(newJSONRequest(t, "PUT", "/api/admin/reports/12345", model.UpdateReportRequest{
			Name: &name,
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Report not found", decodeError(t, rr))
	})
}

func TestAdminDeleteReport(t *testing.T) {
	t.Run("Cascades Approved Info", func(t *testing.T) {
		clearData()

		id := submitTestReport(t, "Jane Doe", "Springfield")
		approveTestReport(t, id)
		otherID := submitTestReport(t, "John Roe", "Shelbyville")
		approveTestReport(t, otherID)

		for _, reportID := range []int64{id, otherID} {
			rr := executeRequest(newJSONRequest(t, "POST", "/api/admin/report-info/add", model.AdminAddInfoRequest{
				ReportID: reportID,
				Info:     "seen at station",
				AdminID:  "admin",
			}))
			if rr.Code != http.StatusCreated {
				t.Fatalf("failed to add info for report %d: %s", reportID, rr.Body.String())
			}
		}

		rr := executeRequest(newJSONRequest(t, "DELETE", fmt.Sprintf("/api/admin/reports/%d", id), nil))
		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp model.MessageResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Equal(t, "Report and associated information deleted successfully", resp.Message)

		rr = executeRequest(newJSONRequest(t, "GET", "/api/reports", nil))
		reports := decodeReports(t, rr)
		if assert.Len(t, reports, 1) {
			assert.Equal(t, otherID, reports[0].ID)
		}

		rr = executeRequest(newJSONRequest(t, "GET", fmt.Sprintf("/api/report-info/%d", id), nil))
		assert.Empty(t, decodeInfos(t, rr))

		rr = executeRequest(newJSONRequest(t, "GET", fmt.Sprintf("/api/report-info/%d", otherID), nil))
		assert.Len(t, decodeInfos(t, rr), 1)
	})

	t.Run("Not Found", func(t *testing.T) {
		clearData()

		rr := executeRequest(newJSONRequest(t, "DELETE", "/api/admin/reports/12345", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Report not found", decodeError(t, rr))
	})
}

func TestLegacySubmit(t *testing.T) {
	legacyFields := func() map[string]string {
		fields := reportFields("Jane Doe", "Springfield")
		delete(fields, "submitted_by")
		return fields
	}

	t.Run("Success", func(t *testing.T) {
		clearData()

		req := newMultipartRequest(t, "/submit-details", legacyFields(),
			"photo", "jane.png", []byte("not-really-a-png"))
		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusCreated, rr.Code) {
			printBody(t, rr)
		}

		approved := testRepo.Report.Approved.Load()
		if assert.Len(t, approved, 1) {
			assert.Equal(t, constant.StatusApproved, approved[0].Status)
			assert.True(t, strings.HasPrefix(approved[0].Image, "/"), "image should be a site-relative path, got %q", approved[0].Image)

			fileName := filepath.Base(approved[0].Image)
			_, err := os.Stat(filepath.Join(testConfig.StorageUpload, fileName))
			assert.NoError(t, err, "uploaded photo should exist on disk")
		}

		rr = executeRequest(newJSONRequest(t, "GET", "/api/reports/pending", nil))
		assert.Empty(t, decodeReports(t, rr))
	})

	t.Run("Zero Age", func(t *testing.T) {
		clearData()

		fields := legacyFields()
		fields["age"] = "0"
		req := newMultipartRequest(t, "/submit-details", fields,
			"photo", "jane.png", []byte("not-really-a-png"))
		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusCreated, rr.Code) {
			printBody(t, rr)
		}
	})

	t.Run("Missing Photo", func(t *testing.T) {
		clearData()

		rr := executeRequest(newMultipartRequest(t, "/submit-details", legacyFields(), "", "", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "No file part", decodeError(t, rr))
	})

	t.Run("Invalid File Type", func(t *testing.T) {
		clearData()

		req := newMultipartRequest(t, "/submit-details", legacyFields(),
			"photo", "notes.txt", []byte("just text"))
		rr := executeRequest(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid file type", decodeError(t, rr))
	})
}
