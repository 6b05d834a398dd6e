package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"campus_api/internal/api"
	"campus_api/internal/models"
	"campus_api/internal/repository"
	"campus_api/internal/service"
	"campus_api/internal/storage"
)

type RoutesTestSuite struct {
	suite.Suite

	db     *storage.Database
	router *gin.Engine
}

func TestRoutesSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func (suite *RoutesTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *RoutesTestSuite) SetupTest() {
	db, err := storage.NewSQLiteDB(":memory:")
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&models.Professor{}, &models.Student{}, &models.LibraryMembership{}))

	services := service.NewServices(repository.NewRepositories(db))
	suite.db = db
	suite.router = api.NewRouter(services, api.Options{
		Logger:   zaptest.NewLogger(suite.T()),
		Health:   db,
		Registry: prometheus.NewRegistry(),
	})
}

func (suite *RoutesTestSuite) TearDownTest() {
	suite.Require().NoError(suite.db.Close())
}

func (suite *RoutesTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RoutesTestSuite) decode(w *httptest.ResponseRecorder, v interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (suite *RoutesTestSuite) createStudent(id string) {
	w := suite.do(http.MethodPost, "/students",
		`{"id":"`+id+`","name":"Student `+id+`","dateOfBirth":"2000-01-01","aadharNumber":"A-`+id+`"}`)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *RoutesTestSuite) createProfessor(id string) {
	w := suite.do(http.MethodPost, "/professors",
		`{"id":"`+id+`","name":"Prof `+id+`","seniority":2,"aadharNumber":"A-`+id+`"}`)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *RoutesTestSuite) TestCreateStudentAndList() {
	w := suite.do(http.MethodPost, "/students", `{"id":"S1","name":"Ann","dateOfBirth":"2000-01-01","aadharNumber":"1234"}`)
	suite.Equal(http.StatusCreated, w.Code)

	var created map[string]interface{}
	suite.decode(w, &created)
	suite.Equal("S1", created["id"])
	suite.Equal("Ann", created["name"])
	suite.Equal("1234", created["aadharNumber"])
	suite.Equal("2000-01-01T00:00:00Z", created["dateOfBirth"])
	suite.Nil(created["proctorId"])

	w = suite.do(http.MethodGet, "/students", "")
	suite.Equal(http.StatusOK, w.Code)
	var students []map[string]interface{}
	suite.decode(w, &students)
	suite.Require().Len(students, 1)
	suite.Equal("S1", students[0]["id"])
	suite.NotContains(students[0], "proctor")
}

func (suite *RoutesTestSuite) TestCreateMissingFields() {
	bodies := map[string][]string{
		"/students": {
			`{"name":"Ann","dateOfBirth":"2000-01-01","aadharNumber":"1234"}`,
			`{"id":"S1","dateOfBirth":"2000-01-01","aadharNumber":"1234"}`,
			`{"id":"S1","name":"Ann","aadharNumber":"1234"}`,
			`{"id":"S1","name":"","dateOfBirth":"2000-01-01","aadharNumber":"1234"}`,
			`{}`,
		},
		"/professors": {
			`{"name":"Rao","seniority":1,"aadharNumber":"9"}`,
			`{"id":"P1","name":"Rao","aadharNumber":"9"}`,
			`{"id":"P1","name":"Rao","seniority":null,"aadharNumber":"9"}`,
			`{"id":"P1","name":"Rao","seniority":0,"aadharNumber":"9"}`,
			`{"id":"P1","name":"Rao","seniority":"","aadharNumber":"9"}`,
			`{"id":"P1","name":"Rao","seniority":1}`,
		},
	}

	for path, list := range bodies {
		for _, body := range list {
			w := suite.do(http.MethodPost, path, body)
			suite.Equal(http.StatusBadRequest, w.Code, body)
			suite.JSONEq(`{"error":"Missing required fields"}`, w.Body.String())
		}

		w := suite.do(http.MethodGet, path, "")
		suite.JSONEq(`[]`, w.Body.String())
	}
}

func (suite *RoutesTestSuite) TestCreateDuplicateIsInternalError() {
	suite.createStudent("S1")
	w := suite.do(http.MethodPost, "/students", `{"id":"S1","name":"Other","dateOfBirth":"2001-01-01","aadharNumber":"1"}`)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Internal Server Error"}`, w.Body.String())

	suite.createProfessor("P1")
	w = suite.do(http.MethodPost, "/professors", `{"id":"P1","name":"Other","seniority":"3","aadharNumber":"1"}`)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Internal Server Error"}`, w.Body.String())
}

func (suite *RoutesTestSuite) TestCreateMalformedBody() {
	w := suite.do(http.MethodPost, "/students", `{"id":`)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Internal Server Error"}`, w.Body.String())

	w = suite.do(http.MethodPost, "/students", `{"id":"S1","name":"Ann","dateOfBirth":"someday","aadharNumber":"1"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Invalid dateOfBirth"}`, w.Body.String())

	w = suite.do(http.MethodPost, "/professors", `{"id":"P1","name":"Rao","seniority":true,"aadharNumber":"9"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Invalid seniority"}`, w.Body.String())

	suite.JSONEq(`[]`, suite.do(http.MethodGet, "/students", "").Body.String())
	suite.JSONEq(`[]`, suite.do(http.MethodGet, "/professors", "").Body.String())
}

func (suite *RoutesTestSuite) TestCreateProfessorSeniority() {
	w := suite.do(http.MethodPost, "/professors", `{"id":"P1","name":"Rao","seniority":"Associate","aadharNumber":"9"}`)
	suite.Equal(http.StatusCreated, w.Code)
	var created map[string]interface{}
	suite.decode(w, &created)
	suite.Equal("Associate", created["seniority"])

	w = suite.do(http.MethodPost, "/professors", `{"id":"P2","name":"Lee","seniority":4,"aadharNumber":"8"}`)
	suite.Equal(http.StatusCreated, w.Code)
	suite.decode(w, &created)
	suite.Equal("4", created["seniority"])

	w = suite.do(http.MethodGet, "/professors", "")
	var professors []map[string]interface{}
	suite.decode(w, &professors)
	suite.Len(professors, 2)
}

func (suite *RoutesTestSuite) TestEnrichedStudents() {
	suite.createProfessor("P1")
	suite.createStudent("S1")
	suite.createStudent("S2")

	w := suite.do(http.MethodPost, "/professors/P1/proctorships", `{"studentId":"S1"}`)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/students/enriched", "")
	suite.Equal(http.StatusOK, w.Code)
	var students []map[string]interface{}
	suite.decode(w, &students)
	suite.Require().Len(students, 2)

	for _, s := range students {
		suite.Contains(s, "proctor")
		if s["proctorId"] != nil {
			proctor := s["proctor"].(map[string]interface{})
			suite.Equal(s["proctorId"], proctor["id"])
		} else {
			suite.Nil(s["proctor"])
		}
	}
}

func (suite *RoutesTestSuite) TestProctorshipReassignment() {
	suite.createProfessor("P1")
	suite.createProfessor("P2")
	suite.createStudent("S1")

	w := suite.do(http.MethodPost, "/professors/P1/proctorships", `{"studentId":"S1"}`)
	suite.Require().Equal(http.StatusOK, w.Code)
	var student map[string]interface{}
	suite.decode(w, &student)
	suite.Equal("P1", student["proctorId"])

	w = suite.do(http.MethodPost, "/professors/P2/proctorships", `{"studentId":"S1"}`)
	suite.Require().Equal(http.StatusOK, w.Code)

	var underP1, underP2 []map[string]interface{}
	suite.decode(suite.do(http.MethodGet, "/professors/P1/proctorships", ""), &underP1)
	suite.decode(suite.do(http.MethodGet, "/professors/P2/proctorships", ""), &underP2)
	suite.Empty(underP1)
	suite.Require().Len(underP2, 1)
	suite.Equal("S1", underP2[0]["id"])
}

func (suite *RoutesTestSuite) TestAssignProctorFailures() {
	suite.createStudent("S1")

	w := suite.do(http.MethodPost, "/professors/P1/proctorships", `{}`)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/professors/P1/proctorships", `{"studentId":"ghost"}`)
	suite.Equal(http.StatusNotFound, w.Code)

	// 教授不存在時外鍵檢查失敗
	w = suite.do(http.MethodPost, "/professors/P404/proctorships", `{"studentId":"S1"}`)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Internal Server Error"}`, w.Body.String())
}

func (suite *RoutesTestSuite) TestUpdateStudent() {
	suite.createStudent("S1")

	w := suite.do(http.MethodPatch, "/students/S1", `{"name":"Ann B"}`)
	suite.Require().Equal(http.StatusOK, w.Code)
	var student map[string]interface{}
	suite.decode(w, &student)
	suite.Equal("Ann B", student["name"])
	suite.Equal("A-S1", student["aadharNumber"])

	w = suite.do(http.MethodPatch, "/students/S1", `{"id":"S2"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Unknown field: id"}`, w.Body.String())

	w = suite.do(http.MethodPatch, "/students/S1", `{"name":""}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Invalid name"}`, w.Body.String())

	w = suite.do(http.MethodPatch, "/students/S1", `not json`)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPatch, "/students/S9", `{"name":"x"}`)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RoutesTestSuite) TestUpdateProfessor() {
	suite.createProfessor("P1")

	w := suite.do(http.MethodPatch, "/professors/P1", `{"seniority":5}`)
	suite.Require().Equal(http.StatusOK, w.Code)
	var professor map[string]interface{}
	suite.decode(w, &professor)
	suite.Equal("5", professor["seniority"])
	suite.Equal("Prof P1", professor["name"])

	for body, want := range map[string]string{
		`{"seniority":true}`:        `{"error":"Invalid seniority"}`,
		`{"seniority":0}`:           `{"error":"Invalid seniority"}`,
		`{"seniority":null}`:        `{"error":"Invalid seniority"}`,
		`{"name":""}`:               `{"error":"Invalid name"}`,
		`{"aadharNumber":""}`:       `{"error":"Invalid aadharNumber"}`,
		`{"hireDate":"2020-01-01"}`: `{"error":"Unknown field: hireDate"}`,
	} {
		w = suite.do(http.MethodPatch, "/professors/P1", body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
		suite.JSONEq(want, w.Body.String(), body)
	}

	// 被拒絕的更新不會寫入
	var professors []map[string]interface{}
	suite.decode(suite.do(http.MethodGet, "/professors", ""), &professors)
	suite.Require().Len(professors, 1)
	suite.Equal("5", professors[0]["seniority"])
	suite.Equal("Prof P1", professors[0]["name"])

	w = suite.do(http.MethodPatch, "/professors/P9", `{"name":"x"}`)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RoutesTestSuite) TestDeleteTwice() {
	suite.createStudent("S1")
	suite.createProfessor("P1")

	w := suite.do(http.MethodDelete, "/students/S1", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Student deleted"}`, w.Body.String())
	w = suite.do(http.MethodDelete, "/students/S1", "")
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodDelete, "/professors/P1", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Professor deleted"}`, w.Body.String())
	w = suite.do(http.MethodDelete, "/professors/P1", "")
	suite.Equal(http.StatusNotFound, w.Code)

	suite.JSONEq(`[]`, suite.do(http.MethodGet, "/students", "").Body.String())
}

func (suite *RoutesTestSuite) TestLibraryMembership() {
	suite.createStudent("S1")
	path := "/students/S1/library-membership"

	w := suite.do(http.MethodGet, path, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("null", strings.TrimSpace(w.Body.String()))

	w = suite.do(http.MethodPost, path, `{"status":"active","maxBooks":3}`)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var first map[string]interface{}
	suite.decode(w, &first)
	suite.Equal("S1", first["studentId"])
	suite.Equal("active", first["status"])

	// 第二筆會籍違反唯一約束，第一筆保持不變
	w = suite.do(http.MethodPost, path, `{"status":"other"}`)
	suite.Equal(http.StatusInternalServerError, w.Code)

	var got map[string]interface{}
	suite.decode(suite.do(http.MethodGet, path, ""), &got)
	suite.Equal(first["id"], got["id"])
	suite.Equal("active", got["status"])
	suite.Equal(float64(3), got["maxBooks"])

	w = suite.do(http.MethodPatch, path, `{"status":"suspended"}`)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &got)
	suite.Equal("suspended", got["status"])
	suite.Equal(float64(3), got["maxBooks"])

	w = suite.do(http.MethodDelete, path, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Library membership deleted"}`, w.Body.String())

	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, path, "").Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPatch, path, `{"status":"x"}`).Code)
}

func (suite *RoutesTestSuite) TestLibraryMembershipUnknownStudent() {
	w := suite.do(http.MethodPost, "/students/ghost/library-membership", `{"status":"active"}`)
	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *RoutesTestSuite) TestHealthMetricsAndNoRoute() {
	w := suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"ok"}`, w.Body.String())
	suite.NotEmpty(w.Header().Get("X-Request-ID"))

	w = suite.do(http.MethodGet, "/nowhere", "")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Not Found"}`, w.Body.String())

	w = suite.do(http.MethodGet, "/metrics", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "campus_api_http_requests_total")
}
