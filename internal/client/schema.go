package client

import (
	"encoding/json"

	"tikkeul/internal/domain"
)

// Response schemas. Every endpoint decodes into one of these and is
// validated before anything reaches the caller.

type factorySchema struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required"`
}

type categorySchema struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required"`
}

type factoriesResponse struct {
	Factories []factorySchema `json:"factories" validate:"required,dive"`
}

type threatTypesResponse struct {
	ThreatTypes []categorySchema `json:"threatTypes" validate:"required,dive"`
}

type workTypesResponse struct {
	WorkTypes []categorySchema `json:"workTypes" validate:"required,dive"`
}

type industryTypesResponse struct {
	IndustryTypes []categorySchema `json:"industryTypes" validate:"required,dive"`
}

type checksResponse struct {
	Checks []struct {
		Question string `json:"question" validate:"required"`
	} `json:"checks" validate:"required,dive"`
}

type ageRangesResponse struct {
	AgeRanges []domain.RangeCategory `json:"ageRanges" validate:"required"`
}

type workExperienceRangesResponse struct {
	WorkExperienceRanges []domain.RangeCategory `json:"workExperienceRanges" validate:"required"`
}

type createdResponse struct {
	ID int `json:"id" validate:"gt=0"`
}

type incidentsResponse struct {
	Incidents []json.RawMessage `json:"incidents" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
}

type uploadURLResponse struct {
	PresignedURL string `json:"presignedUrl" validate:"required,url"`
	FileURL      string `json:"fileUrl" validate:"required,url"`
}

func toFactories(in []factorySchema) []domain.Factory {
	out := make([]domain.Factory, 0, len(in))
	for _, f := range in {
		out = append(out, domain.Factory{ID: f.ID, Name: f.Name})
	}
	return out
}

func toCategories(in []categorySchema) []domain.Category {
	out := make([]domain.Category, 0, len(in))
	for _, c := range in {
		out = append(out, domain.NewCategory(c.ID, c.Name))
	}
	return out
}

func fromRanges(in []domain.RangeCategory) []domain.Category {
	out := make([]domain.Category, 0, len(in))
	for _, r := range in {
		out = append(out, domain.CategoryFromRange(r))
	}
	return out
}
