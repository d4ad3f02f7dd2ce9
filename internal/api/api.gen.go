// Package api provides primitives to interact with the openapi HTTP API.
//
// Code generated by github.com/oapi-codegen/oapi-codegen/v2 version v2.5.1 DO NOT EDIT.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tikkeul/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	strictnethttp "github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for GetIndustryTypesParamsSize.
const (
	Large  GetIndustryTypesParamsSize = "large"
	Medium GetIndustryTypesParamsSize = "medium"
)

// AgeRangeList defines model for AgeRangeList.
type AgeRangeList struct {
	AgeRanges []RangeCategory `json:"ageRanges"`
}

// Category defines model for Category.
type Category struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// CheckList defines model for CheckList.
type CheckList struct {
	Checks []CheckQuestion `json:"checks"`
}

// CheckQuestion defines model for CheckQuestion.
type CheckQuestion struct {
	Id       int    `json:"id"`
	Question string `json:"question"`
}

// CreatedId defines model for CreatedId.
type CreatedId struct {
	Id int `json:"id"`
}

// Error defines model for Error.
type Error struct {
	Detail string `json:"detail"`
}

// Factory defines model for Factory.
type Factory struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// FactoryList defines model for FactoryList.
type FactoryList struct {
	Factories []Factory `json:"factories"`
}

// Health defines model for Health.
type Health struct {
	Status string `json:"status"`
}

// Incident defines model for Incident.
type Incident struct {
	// Checks Object keyed by question, in the order asked.
	Checks             domain.Checks      `json:"checks"`
	Date               openapi_types.Date `json:"date"`
	Description        string             `json:"description"`
	Factory            Factory            `json:"factory"`
	Id                 int                `json:"id"`
	ImageUrl           *string            `json:"imageUrl,omitempty"`
	IndustryTypeLarge  *Category          `json:"industryTypeLarge,omitempty"`
	IndustryTypeMedium *Category          `json:"industryTypeMedium,omitempty"`
	ThreatLevel        int                `json:"threatLevel"`
	ThreatType         Category           `json:"threatType"`
	WorkType           Category           `json:"workType"`
	Worker             Worker             `json:"worker"`
}

// IncidentList defines model for IncidentList.
type IncidentList struct {
	Incidents []Incident `json:"incidents"`
}

// IndustryTypeList defines model for IndustryTypeList.
type IndustryTypeList struct {
	IndustryTypes []Category `json:"industryTypes"`
}

// NewIncident defines model for NewIncident.
type NewIncident struct {
	// Checks Ordered [question, answer] pairs. Every answer must be true or false.
	Checks domain.CheckPairs `json:"checks"`

	// Date ISO-8601 timestamp or calendar date; only the date is kept.
	Date                 domain.ISODate `json:"date"`
	Description          *string        `json:"description,omitempty"`
	FactoryId            int            `json:"factory_id"`
	ImageUrl             *string        `json:"image_url,omitempty"`
	IndustryTypeLargeId  *int           `json:"industryTypeLarge_id,omitempty"`
	IndustryTypeMediumId *int           `json:"industryTypeMedium_id,omitempty"`
	ThreatLevel          int            `json:"threatLevel"`
	ThreatTypeId         int            `json:"threatType_id"`
	WorkTypeId           int            `json:"workType_id"`
	WorkerId             int            `json:"worker_id"`
}

// NewWorker defines model for NewWorker.
type NewWorker struct {
	AgeRangeId            int    `json:"ageRange_id"`
	Name                  string `json:"name"`
	Sex                   string `json:"sex"`
	WorkExperienceRangeId int    `json:"workExperienceRange_id"`
}

// RangeCategory defines model for RangeCategory.
type RangeCategory struct {
	Id    int    `json:"id"`
	Range string `json:"range"`
}

// SignupRequest defines model for SignupRequest.
type SignupRequest struct {
	Password string `json:"password"`
	Username string `json:"username"`
}

// SignupResult defines model for SignupResult.
type SignupResult struct {
	Username string `json:"username"`
}

// ThreatTypeList defines model for ThreatTypeList.
type ThreatTypeList struct {
	ThreatTypes []Category `json:"threatTypes"`
}

// TokenRequest defines model for TokenRequest.
type TokenRequest struct {
	Password string `json:"password"`
	Username string `json:"username"`
}

// TokenResponse defines model for TokenResponse.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UploadRequest defines model for UploadRequest.
type UploadRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

// UploadTicket defines model for UploadTicket.
type UploadTicket struct {
	FileUrl      string `json:"fileUrl"`
	PresignedUrl string `json:"presignedUrl"`
}

// WorkExperienceRangeList defines model for WorkExperienceRangeList.
type WorkExperienceRangeList struct {
	WorkExperienceRanges []RangeCategory `json:"workExperienceRanges"`
}

// WorkTypeList defines model for WorkTypeList.
type WorkTypeList struct {
	WorkTypes []Category `json:"workTypes"`
}

// Worker defines model for Worker.
type Worker struct {
	AgeRange            Category `json:"ageRange"`
	Id                  int      `json:"id"`
	Name                string   `json:"name"`
	Sex                 string   `json:"sex"`
	WorkExperienceRange Category `json:"workExperienceRange"`
}

// FactoryIdQuery defines model for FactoryIdQuery.
type FactoryIdQuery = int

// From defines model for From.
type From = openapi_types.Date

// Id defines model for Id.
type Id = int

// To defines model for To.
type To = openapi_types.Date

// GetDashboardSummaryParams defines parameters for GetDashboardSummary.
type GetDashboardSummaryParams struct {
	FactoryId *FactoryIdQuery `form:"factory_id,omitempty" json:"factory_id,omitempty"`

	// From First day included.
	From *From `form:"from,omitempty" json:"from,omitempty"`

	// To Last day included.
	To *To `form:"to,omitempty" json:"to,omitempty"`
}

// ListIncidentsParams defines parameters for ListIncidents.
type ListIncidentsParams struct {
	FactoryId *FactoryIdQuery `form:"factory_id,omitempty" json:"factory_id,omitempty"`

	// From First day included.
	From *From `form:"from,omitempty" json:"from,omitempty"`

	// To Last day included.
	To *To `form:"to,omitempty" json:"to,omitempty"`
}

// ListFactoryIncidentsParams defines parameters for ListFactoryIncidents.
type ListFactoryIncidentsParams struct {
	// From First day included.
	From *From `form:"from,omitempty" json:"from,omitempty"`

	// To Last day included.
	To *To `form:"to,omitempty" json:"to,omitempty"`
}

// GetIndustryTypesParamsSize defines parameters for GetIndustryTypes.
type GetIndustryTypesParamsSize string

// CreateTokenFormdataRequestBody defines body for CreateToken for application/x-www-form-urlencoded ContentType.
type CreateTokenFormdataRequestBody = TokenRequest

// CreateUserJSONRequestBody defines body for CreateUser for application/json ContentType.
type CreateUserJSONRequestBody = SignupRequest

// CreateUploadUrlJSONRequestBody defines body for CreateUploadUrl for application/json ContentType.
type CreateUploadUrlJSONRequestBody = UploadRequest

// CreateIncidentJSONRequestBody defines body for CreateIncident for application/json ContentType.
type CreateIncidentJSONRequestBody = NewIncident

// CreateWorkerJSONRequestBody defines body for CreateWorker for application/json ContentType.
type CreateWorkerJSONRequestBody = NewWorker

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /ageRanges)
	GetAgeRanges(w http.ResponseWriter, r *http.Request)

	// (POST /auth/token)
	CreateToken(w http.ResponseWriter, r *http.Request)

	// (POST /auth/user)
	CreateUser(w http.ResponseWriter, r *http.Request)

	// (GET /checks)
	GetChecks(w http.ResponseWriter, r *http.Request)

	// (GET /dashboard/summary)
	GetDashboardSummary(w http.ResponseWriter, r *http.Request, params GetDashboardSummaryParams)

	// (GET /factories)
	GetFactories(w http.ResponseWriter, r *http.Request)

	// (GET /factories/{id})
	GetFactory(w http.ResponseWriter, r *http.Request, id Id)

	// (GET /healthz)
	GetHealthz(w http.ResponseWriter, r *http.Request)

	// (POST /image/uploadURL)
	CreateUploadUrl(w http.ResponseWriter, r *http.Request)

	// (GET /incidents)
	ListIncidents(w http.ResponseWriter, r *http.Request, params ListIncidentsParams)

	// (POST /incidents)
	CreateIncident(w http.ResponseWriter, r *http.Request)

	// (GET /incidents/factory/{id})
	ListFactoryIncidents(w http.ResponseWriter, r *http.Request, id Id, params ListFactoryIncidentsParams)

	// (GET /incidents/{id})
	GetIncident(w http.ResponseWriter, r *http.Request, id Id)

	// (GET /industryTypes/{size})
	GetIndustryTypes(w http.ResponseWriter, r *http.Request, size GetIndustryTypesParamsSize)

	// (GET /threatTypes)
	GetThreatTypes(w http.ResponseWriter, r *http.Request)

	// (GET /workExperienceRanges)
	GetWorkExperienceRanges(w http.ResponseWriter, r *http.Request)

	// (GET /workTypes)
	GetWorkTypes(w http.ResponseWriter, r *http.Request)

	// (POST /workers)
	CreateWorker(w http.ResponseWriter, r *http.Request)
}

// Unimplemented server implementation that returns http.StatusNotImplemented for each endpoint.

type Unimplemented struct{}

// (GET /ageRanges)
func (_ Unimplemented) GetAgeRanges(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (POST /auth/token)
func (_ Unimplemented) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (POST /auth/user)
func (_ Unimplemented) CreateUser(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /checks)
func (_ Unimplemented) GetChecks(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /dashboard/summary)
func (_ Unimplemented) GetDashboardSummary(w http.ResponseWriter, r *http.Request, params GetDashboardSummaryParams) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /factories)
func (_ Unimplemented) GetFactories(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /factories/{id})
func (_ Unimplemented) GetFactory(w http.ResponseWriter, r *http.Request, id Id) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /healthz)
func (_ Unimplemented) GetHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (POST /image/uploadURL)
func (_ Unimplemented) CreateUploadUrl(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /incidents)
func (_ Unimplemented) ListIncidents(w http.ResponseWriter, r *http.Request, params ListIncidentsParams) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (POST /incidents)
func (_ Unimplemented) CreateIncident(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /incidents/factory/{id})
func (_ Unimplemented) ListFactoryIncidents(w http.ResponseWriter, r *http.Request, id Id, params ListFactoryIncidentsParams) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /incidents/{id})
func (_ Unimplemented) GetIncident(w http.ResponseWriter, r *http.Request, id Id) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /industryTypes/{size})
func (_ Unimplemented) GetIndustryTypes(w http.ResponseWriter, r *http.Request, size GetIndustryTypesParamsSize) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /threatTypes)
func (_ Unimplemented) GetThreatTypes(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /workExperienceRanges)
func (_ Unimplemented) GetWorkExperienceRanges(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /workTypes)
func (_ Unimplemented) GetWorkTypes(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (POST /workers)
func (_ Unimplemented) CreateWorker(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// GetAgeRanges operation middleware
func (siw *ServerInterfaceWrapper) GetAgeRanges(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetAgeRanges(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateToken operation middleware
func (siw *ServerInterfaceWrapper) CreateToken(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateToken(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateUser operation middleware
func (siw *ServerInterfaceWrapper) CreateUser(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateUser(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetChecks operation middleware
func (siw *ServerInterfaceWrapper) GetChecks(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetChecks(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetDashboardSummary operation middleware
func (siw *ServerInterfaceWrapper) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {

	var err error

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	// Parameter object where we will unmarshal all parameters from the context
	var params GetDashboardSummaryParams

	// ------------- Optional query parameter "factory_id" -------------

	err = runtime.BindQueryParameter("form", true, false, "factory_id", r.URL.Query(), &params.FactoryId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "factory_id", Err: err})
		return
	}

	// ------------- Optional query parameter "from" -------------

	err = runtime.BindQueryParameter("form", true, false, "from", r.URL.Query(), &params.From)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "from", Err: err})
		return
	}

	// ------------- Optional query parameter "to" -------------

	err = runtime.BindQueryParameter("form", true, false, "to", r.URL.Query(), &params.To)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "to", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetDashboardSummary(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetFactories operation middleware
func (siw *ServerInterfaceWrapper) GetFactories(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetFactories(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetFactory operation middleware
func (siw *ServerInterfaceWrapper) GetFactory(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetFactory(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetHealthz operation middleware
func (siw *ServerInterfaceWrapper) GetHealthz(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHealthz(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateUploadUrl operation middleware
func (siw *ServerInterfaceWrapper) CreateUploadUrl(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateUploadUrl(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListIncidents operation middleware
func (siw *ServerInterfaceWrapper) ListIncidents(w http.ResponseWriter, r *http.Request) {

	var err error

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	// Parameter object where we will unmarshal all parameters from the context
	var params ListIncidentsParams

	// ------------- Optional query parameter "factory_id" -------------

	err = runtime.BindQueryParameter("form", true, false, "factory_id", r.URL.Query(), &params.FactoryId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "factory_id", Err: err})
		return
	}

	// ------------- Optional query parameter "from" -------------

	err = runtime.BindQueryParameter("form", true, false, "from", r.URL.Query(), &params.From)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "from", Err: err})
		return
	}

	// ------------- Optional query parameter "to" -------------

	err = runtime.BindQueryParameter("form", true, false, "to", r.URL.Query(), &params.To)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "to", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListIncidents(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateIncident operation middleware
func (siw *ServerInterfaceWrapper) CreateIncident(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateIncident(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListFactoryIncidents operation middleware
func (siw *ServerInterfaceWrapper) ListFactoryIncidents(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	// Parameter object where we will unmarshal all parameters from the context
	var params ListFactoryIncidentsParams

	// ------------- Optional query parameter "from" -------------

	err = runtime.BindQueryParameter("form", true, false, "from", r.URL.Query(), &params.From)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "from", Err: err})
		return
	}

	// ------------- Optional query parameter "to" -------------

	err = runtime.BindQueryParameter("form", true, false, "to", r.URL.Query(), &params.To)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "to", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListFactoryIncidents(w, r, id, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetIncident operation middleware
func (siw *ServerInterfaceWrapper) GetIncident(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "id" -------------
	var id Id

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetIncident(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetIndustryTypes operation middleware
func (siw *ServerInterfaceWrapper) GetIndustryTypes(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "size" -------------
	var size GetIndustryTypesParamsSize

	err = runtime.BindStyledParameterWithOptions("simple", "size", chi.URLParam(r, "size"), &size, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "size", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetIndustryTypes(w, r, size)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetThreatTypes operation middleware
func (siw *ServerInterfaceWrapper) GetThreatTypes(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetThreatTypes(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetWorkExperienceRanges operation middleware
func (siw *ServerInterfaceWrapper) GetWorkExperienceRanges(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetWorkExperienceRanges(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetWorkTypes operation middleware
func (siw *ServerInterfaceWrapper) GetWorkTypes(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetWorkTypes(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateWorker operation middleware
func (siw *ServerInterfaceWrapper) CreateWorker(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateWorker(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

type UnescapedCookieParamError struct {
	ParamName string
	Err       error
}

func (e *UnescapedCookieParamError) Error() string {
	return fmt.Sprintf("error unescaping cookie parameter '%s'", e.ParamName)
}

func (e *UnescapedCookieParamError) Unwrap() error {
	return e.Err
}

type UnmarshalingParamError struct {
	ParamName string
	Err       error
}

func (e *UnmarshalingParamError) Error() string {
	return fmt.Sprintf("Error unmarshaling parameter %s as JSON: %s", e.ParamName, e.Err.Error())
}

func (e *UnmarshalingParamError) Unwrap() error {
	return e.Err
}

type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

type RequiredHeaderError struct {
	ParamName string
	Err       error
}

func (e *RequiredHeaderError) Error() string {
	return fmt.Sprintf("Header parameter %s is required, but not found", e.ParamName)
}

func (e *RequiredHeaderError) Unwrap() error {
	return e.Err
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type TooManyValuesForParamError struct {
	ParamName string
	Count     int
}

func (e *TooManyValuesForParamError) Error() string {
	return fmt.Sprintf("Expected one value for %s, got %d", e.ParamName, e.Count)
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

func HandlerFromMuxWithBaseURL(si ServerInterface, r chi.Router, baseURL string) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseURL:    baseURL,
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/ageRanges", wrapper.GetAgeRanges)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/auth/token", wrapper.CreateToken)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/auth/user", wrapper.CreateUser)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/checks", wrapper.GetChecks)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/dashboard/summary", wrapper.GetDashboardSummary)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/factories", wrapper.GetFactories)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/factories/{id}", wrapper.GetFactory)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/healthz", wrapper.GetHealthz)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/image/uploadURL", wrapper.CreateUploadUrl)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/incidents", wrapper.ListIncidents)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/incidents", wrapper.CreateIncident)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/incidents/factory/{id}", wrapper.ListFactoryIncidents)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/incidents/{id}", wrapper.GetIncident)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/industryTypes/{size}", wrapper.GetIndustryTypes)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/threatTypes", wrapper.GetThreatTypes)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/workExperienceRanges", wrapper.GetWorkExperienceRanges)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/workTypes", wrapper.GetWorkTypes)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/workers", wrapper.CreateWorker)
	})

	return r
}

type ErrorJSONResponse Error

type GetAgeRangesRequestObject struct {
}

type GetAgeRangesResponseObject interface {
	VisitGetAgeRangesResponse(w http.ResponseWriter) error
}

type GetAgeRanges200JSONResponse AgeRangeList

func (response GetAgeRanges200JSONResponse) VisitGetAgeRangesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetAgeRangesdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetAgeRangesdefaultJSONResponse) VisitGetAgeRangesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type CreateTokenRequestObject struct {
	Body *CreateTokenFormdataRequestBody
}

type CreateTokenResponseObject interface {
	VisitCreateTokenResponse(w http.ResponseWriter) error
}

type CreateToken200JSONResponse TokenResponse

func (response CreateToken200JSONResponse) VisitCreateTokenResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type CreateTokendefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response CreateTokendefaultJSONResponse) VisitCreateTokenResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type CreateUserRequestObject struct {
	Body *CreateUserJSONRequestBody
}

type CreateUserResponseObject interface {
	VisitCreateUserResponse(w http.ResponseWriter) error
}

type CreateUser201JSONResponse SignupResult

func (response CreateUser201JSONResponse) VisitCreateUserResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(201)

	return json.NewEncoder(w).Encode(response)
}

type CreateUserdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response CreateUserdefaultJSONResponse) VisitCreateUserResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetChecksRequestObject struct {
}

type GetChecksResponseObject interface {
	VisitGetChecksResponse(w http.ResponseWriter) error
}

type GetChecks200JSONResponse CheckList

func (response GetChecks200JSONResponse) VisitGetChecksResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetChecksdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetChecksdefaultJSONResponse) VisitGetChecksResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetDashboardSummaryRequestObject struct {
	Params GetDashboardSummaryParams
}

type GetDashboardSummaryResponseObject interface {
	VisitGetDashboardSummaryResponse(w http.ResponseWriter) error
}

type GetDashboardSummary200JSONResponse domain.DashboardSummary

func (response GetDashboardSummary200JSONResponse) VisitGetDashboardSummaryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetDashboardSummarydefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetDashboardSummarydefaultJSONResponse) VisitGetDashboardSummaryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetFactoriesRequestObject struct {
}

type GetFactoriesResponseObject interface {
	VisitGetFactoriesResponse(w http.ResponseWriter) error
}

type GetFactories200JSONResponse FactoryList

func (response GetFactories200JSONResponse) VisitGetFactoriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetFactoriesdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetFactoriesdefaultJSONResponse) VisitGetFactoriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetFactoryRequestObject struct {
	Id Id `json:"id"`
}

type GetFactoryResponseObject interface {
	VisitGetFactoryResponse(w http.ResponseWriter) error
}

type GetFactory200JSONResponse Factory

func (response GetFactory200JSONResponse) VisitGetFactoryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetFactorydefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetFactorydefaultJSONResponse) VisitGetFactoryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetHealthzRequestObject struct {
}

type GetHealthzResponseObject interface {
	VisitGetHealthzResponse(w http.ResponseWriter) error
}

type GetHealthz200JSONResponse Health

func (response GetHealthz200JSONResponse) VisitGetHealthzResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type CreateUploadUrlRequestObject struct {
	Body *CreateUploadUrlJSONRequestBody
}

type CreateUploadUrlResponseObject interface {
	VisitCreateUploadUrlResponse(w http.ResponseWriter) error
}

type CreateUploadUrl200JSONResponse UploadTicket

func (response CreateUploadUrl200JSONResponse) VisitCreateUploadUrlResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type CreateUploadUrldefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response CreateUploadUrldefaultJSONResponse) VisitCreateUploadUrlResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type ListIncidentsRequestObject struct {
	Params ListIncidentsParams
}

type ListIncidentsResponseObject interface {
	VisitListIncidentsResponse(w http.ResponseWriter) error
}

type ListIncidents200JSONResponse IncidentList

func (response ListIncidents200JSONResponse) VisitListIncidentsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type ListIncidentsdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response ListIncidentsdefaultJSONResponse) VisitListIncidentsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type CreateIncidentRequestObject struct {
	Body *CreateIncidentJSONRequestBody
}

type CreateIncidentResponseObject interface {
	VisitCreateIncidentResponse(w http.ResponseWriter) error
}

type CreateIncident201JSONResponse CreatedId

func (response CreateIncident201JSONResponse) VisitCreateIncidentResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(201)

	return json.NewEncoder(w).Encode(response)
}

type CreateIncidentdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response CreateIncidentdefaultJSONResponse) VisitCreateIncidentResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type ListFactoryIncidentsRequestObject struct {
	Id     Id `json:"id"`
	Params ListFactoryIncidentsParams
}

type ListFactoryIncidentsResponseObject interface {
	VisitListFactoryIncidentsResponse(w http.ResponseWriter) error
}

type ListFactoryIncidents200JSONResponse IncidentList

func (response ListFactoryIncidents200JSONResponse) VisitListFactoryIncidentsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type ListFactoryIncidentsdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response ListFactoryIncidentsdefaultJSONResponse) VisitListFactoryIncidentsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetIncidentRequestObject struct {
	Id Id `json:"id"`
}

type GetIncidentResponseObject interface {
	VisitGetIncidentResponse(w http.ResponseWriter) error
}

type GetIncident200JSONResponse Incident

func (response GetIncident200JSONResponse) VisitGetIncidentResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetIncidentdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetIncidentdefaultJSONResponse) VisitGetIncidentResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetIndustryTypesRequestObject struct {
	Size GetIndustryTypesParamsSize `json:"size"`
}

type GetIndustryTypesResponseObject interface {
	VisitGetIndustryTypesResponse(w http.ResponseWriter) error
}

type GetIndustryTypes200JSONResponse IndustryTypeList

func (response GetIndustryTypes200JSONResponse) VisitGetIndustryTypesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetIndustryTypesdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetIndustryTypesdefaultJSONResponse) VisitGetIndustryTypesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetThreatTypesRequestObject struct {
}

type GetThreatTypesResponseObject interface {
	VisitGetThreatTypesResponse(w http.ResponseWriter) error
}

type GetThreatTypes200JSONResponse ThreatTypeList

func (response GetThreatTypes200JSONResponse) VisitGetThreatTypesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetThreatTypesdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetThreatTypesdefaultJSONResponse) VisitGetThreatTypesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetWorkExperienceRangesRequestObject struct {
}

type GetWorkExperienceRangesResponseObject interface {
	VisitGetWorkExperienceRangesResponse(w http.ResponseWriter) error
}

type GetWorkExperienceRanges200JSONResponse WorkExperienceRangeList

func (response GetWorkExperienceRanges200JSONResponse) VisitGetWorkExperienceRangesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetWorkExperienceRangesdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetWorkExperienceRangesdefaultJSONResponse) VisitGetWorkExperienceRangesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetWorkTypesRequestObject struct {
}

type GetWorkTypesResponseObject interface {
	VisitGetWorkTypesResponse(w http.ResponseWriter) error
}

type GetWorkTypes200JSONResponse WorkTypeList

func (response GetWorkTypes200JSONResponse) VisitGetWorkTypesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetWorkTypesdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response GetWorkTypesdefaultJSONResponse) VisitGetWorkTypesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

type CreateWorkerRequestObject struct {
	Body *CreateWorkerJSONRequestBody
}

type CreateWorkerResponseObject interface {
	VisitCreateWorkerResponse(w http.ResponseWriter) error
}

type CreateWorker201JSONResponse CreatedId

func (response CreateWorker201JSONResponse) VisitCreateWorkerResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(201)

	return json.NewEncoder(w).Encode(response)
}

type CreateWorkerdefaultJSONResponse struct {
	Body       Error
	StatusCode int
}

func (response CreateWorkerdefaultJSONResponse) VisitCreateWorkerResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)

	return json.NewEncoder(w).Encode(response.Body)
}

// StrictServerInterface represents all server handlers.
type StrictServerInterface interface {

	// (GET /ageRanges)
	GetAgeRanges(ctx context.Context, request GetAgeRangesRequestObject) (GetAgeRangesResponseObject, error)

	// (POST /auth/token)
	CreateToken(ctx context.Context, request CreateTokenRequestObject) (CreateTokenResponseObject, error)

	// (POST /auth/user)
	CreateUser(ctx context.Context, request CreateUserRequestObject) (CreateUserResponseObject, error)

	// (GET /checks)
	GetChecks(ctx context.Context, request GetChecksRequestObject) (GetChecksResponseObject, error)

	// (GET /dashboard/summary)
	GetDashboardSummary(ctx context.Context, request GetDashboardSummaryRequestObject) (GetDashboardSummaryResponseObject, error)

	// (GET /factories)
	GetFactories(ctx context.Context, request GetFactoriesRequestObject) (GetFactoriesResponseObject, error)

	// (GET /factories/{id})
	GetFactory(ctx context.Context, request GetFactoryRequestObject) (GetFactoryResponseObject, error)

	// (GET /healthz)
	GetHealthz(ctx context.Context, request GetHealthzRequestObject) (GetHealthzResponseObject, error)

	// (POST /image/uploadURL)
	CreateUploadUrl(ctx context.Context, request CreateUploadUrlRequestObject) (CreateUploadUrlResponseObject, error)

	// (GET /incidents)
	ListIncidents(ctx context.Context, request ListIncidentsRequestObject) (ListIncidentsResponseObject, error)

	// (POST /incidents)
	CreateIncident(ctx context.Context, request CreateIncidentRequestObject) (CreateIncidentResponseObject, error)

	// (GET /incidents/factory/{id})
	ListFactoryIncidents(ctx context.Context, request ListFactoryIncidentsRequestObject) (ListFactoryIncidentsResponseObject, error)

	// (GET /incidents/{id})
	GetIncident(ctx context.Context, request GetIncidentRequestObject) (GetIncidentResponseObject, error)

	// (GET /industryTypes/{size})
	GetIndustryTypes(ctx context.Context, request GetIndustryTypesRequestObject) (GetIndustryTypesResponseObject, error)

	// (GET /threatTypes)
	GetThreatTypes(ctx context.Context, request GetThreatTypesRequestObject) (GetThreatTypesResponseObject, error)

	// (GET /workExperienceRanges)
	GetWorkExperienceRanges(ctx context.Context, request GetWorkExperienceRangesRequestObject) (GetWorkExperienceRangesResponseObject, error)

	// (GET /workTypes)
	GetWorkTypes(ctx context.Context, request GetWorkTypesRequestObject) (GetWorkTypesResponseObject, error)

	// (POST /workers)
	CreateWorker(ctx context.Context, request CreateWorkerRequestObject) (CreateWorkerResponseObject, error)
}

type StrictHandlerFunc = strictnethttp.StrictHTTPHandlerFunc
type StrictMiddlewareFunc = strictnethttp.StrictHTTPMiddlewareFunc

type StrictHTTPServerOptions struct {
	RequestErrorHandlerFunc  func(w http.ResponseWriter, r *http.Request, err error)
	ResponseErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func NewStrictHandler(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		},
	}}
}

func NewStrictHandlerWithOptions(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc, options StrictHTTPServerOptions) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: options}
}

type strictHandler struct {
	ssi         StrictServerInterface
	middlewares []StrictMiddlewareFunc
	options     StrictHTTPServerOptions
}

// GetAgeRanges operation middleware
func (sh *strictHandler) GetAgeRanges(w http.ResponseWriter, r *http.Request) {
	var request GetAgeRangesRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetAgeRanges(ctx, request.(GetAgeRangesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetAgeRanges")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetAgeRangesResponseObject); ok {
		if err := validResponse.VisitGetAgeRangesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// CreateToken operation middleware
func (sh *strictHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var request CreateTokenRequestObject

	if err := r.ParseForm(); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode formdata: %w", err))
		return
	}
	var body CreateTokenFormdataRequestBody
	if err := runtime.BindForm(&body, r.Form, nil, nil); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't bind formdata: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.CreateToken(ctx, request.(CreateTokenRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "CreateToken")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(CreateTokenResponseObject); ok {
		if err := validResponse.VisitCreateTokenResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// CreateUser operation middleware
func (sh *strictHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var request CreateUserRequestObject

	var body CreateUserJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.CreateUser(ctx, request.(CreateUserRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "CreateUser")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(CreateUserResponseObject); ok {
		if err := validResponse.VisitCreateUserResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetChecks operation middleware
func (sh *strictHandler) GetChecks(w http.ResponseWriter, r *http.Request) {
	var request GetChecksRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetChecks(ctx, request.(GetChecksRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetChecks")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetChecksResponseObject); ok {
		if err := validResponse.VisitGetChecksResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetDashboardSummary operation middleware
func (sh *strictHandler) GetDashboardSummary(w http.ResponseWriter, r *http.Request, params GetDashboardSummaryParams) {
	var request GetDashboardSummaryRequestObject

	request.Params = params

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetDashboardSummary(ctx, request.(GetDashboardSummaryRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetDashboardSummary")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetDashboardSummaryResponseObject); ok {
		if err := validResponse.VisitGetDashboardSummaryResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetFactories operation middleware
func (sh *strictHandler) GetFactories(w http.ResponseWriter, r *http.Request) {
	var request GetFactoriesRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetFactories(ctx, request.(GetFactoriesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetFactories")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetFactoriesResponseObject); ok {
		if err := validResponse.VisitGetFactoriesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetFactory operation middleware
func (sh *strictHandler) GetFactory(w http.ResponseWriter, r *http.Request, id Id) {
	var request GetFactoryRequestObject

	request.Id = id

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetFactory(ctx, request.(GetFactoryRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetFactory")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetFactoryResponseObject); ok {
		if err := validResponse.VisitGetFactoryResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetHealthz operation middleware
func (sh *strictHandler) GetHealthz(w http.ResponseWriter, r *http.Request) {
	var request GetHealthzRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetHealthz(ctx, request.(GetHealthzRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetHealthz")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetHealthzResponseObject); ok {
		if err := validResponse.VisitGetHealthzResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// CreateUploadUrl operation middleware
func (sh *strictHandler) CreateUploadUrl(w http.ResponseWriter, r *http.Request) {
	var request CreateUploadUrlRequestObject

	var body CreateUploadUrlJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.CreateUploadUrl(ctx, request.(CreateUploadUrlRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "CreateUploadUrl")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(CreateUploadUrlResponseObject); ok {
		if err := validResponse.VisitCreateUploadUrlResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// ListIncidents operation middleware
func (sh *strictHandler) ListIncidents(w http.ResponseWriter, r *http.Request, params ListIncidentsParams) {
	var request ListIncidentsRequestObject

	request.Params = params

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ListIncidents(ctx, request.(ListIncidentsRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "ListIncidents")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(ListIncidentsResponseObject); ok {
		if err := validResponse.VisitListIncidentsResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// CreateIncident operation middleware
func (sh *strictHandler) CreateIncident(w http.ResponseWriter, r *http.Request) {
	var request CreateIncidentRequestObject

	var body CreateIncidentJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.CreateIncident(ctx, request.(CreateIncidentRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "CreateIncident")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(CreateIncidentResponseObject); ok {
		if err := validResponse.VisitCreateIncidentResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// ListFactoryIncidents operation middleware
func (sh *strictHandler) ListFactoryIncidents(w http.ResponseWriter, r *http.Request, id Id, params ListFactoryIncidentsParams) {
	var request ListFactoryIncidentsRequestObject

	request.Id = id
	request.Params = params

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ListFactoryIncidents(ctx, request.(ListFactoryIncidentsRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "ListFactoryIncidents")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(ListFactoryIncidentsResponseObject); ok {
		if err := validResponse.VisitListFactoryIncidentsResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetIncident operation middleware
func (sh *strictHandler) GetIncident(w http.ResponseWriter, r *http.Request, id Id) {
	var request GetIncidentRequestObject

	request.Id = id

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetIncident(ctx, request.(GetIncidentRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetIncident")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetIncidentResponseObject); ok {
		if err := validResponse.VisitGetIncidentResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetIndustryTypes operation middleware
func (sh *strictHandler) GetIndustryTypes(w http.ResponseWriter, r *http.Request, size GetIndustryTypesParamsSize) {
	var request GetIndustryTypesRequestObject

	request.Size = size

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetIndustryTypes(ctx, request.(GetIndustryTypesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetIndustryTypes")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetIndustryTypesResponseObject); ok {
		if err := validResponse.VisitGetIndustryTypesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetThreatTypes operation middleware
func (sh *strictHandler) GetThreatTypes(w http.ResponseWriter, r *http.Request) {
	var request GetThreatTypesRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetThreatTypes(ctx, request.(GetThreatTypesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetThreatTypes")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetThreatTypesResponseObject); ok {
		if err := validResponse.VisitGetThreatTypesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetWorkExperienceRanges operation middleware
func (sh *strictHandler) GetWorkExperienceRanges(w http.ResponseWriter, r *http.Request) {
	var request GetWorkExperienceRangesRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetWorkExperienceRanges(ctx, request.(GetWorkExperienceRangesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetWorkExperienceRanges")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetWorkExperienceRangesResponseObject); ok {
		if err := validResponse.VisitGetWorkExperienceRangesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetWorkTypes operation middleware
func (sh *strictHandler) GetWorkTypes(w http.ResponseWriter, r *http.Request) {
	var request GetWorkTypesRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetWorkTypes(ctx, request.(GetWorkTypesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetWorkTypes")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetWorkTypesResponseObject); ok {
		if err := validResponse.VisitGetWorkTypesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// CreateWorker operation middleware
func (sh *strictHandler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var request CreateWorkerRequestObject

	var body CreateWorkerJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.CreateWorker(ctx, request.(CreateWorkerRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "CreateWorker")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(CreateWorkerResponseObject); ok {
		if err := validResponse.VisitCreateWorkerResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}
