package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bemove/bemove-backend/config"
	"github.com/bemove/bemove-backend/pkg/logger"
)

// MealAnalysis 식단 분석 결과. 분석 실패 시 0값과 실패 설명이 들어간다.
type MealAnalysis struct {
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Carbs       float64 `json:"carbs"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
}

// BodyComposition 인바디 결과지에서 추출한 체성분. 추출 실패 시 0값이다.
type BodyComposition struct {
	Weight            float64 `json:"weight"`
	SkeletalMuscle    float64 `json:"skeletal_muscle"`
	BodyFatPercentage float64 `json:"body_fat_percentage"`
	Score             float64 `json:"score"` // 인바디 점수
}

// EstimateService 외부 분석 API 연동. 추정치 제공이 목적이므로 실패해도
// 에러를 돌려주지 않고 대체값을 반환한다. 기록 흐름이 외부 장애에 막히면 안 된다.
type EstimateService interface {
	AnalyzeMeal(description string) MealAnalysis
	EstimateWorkoutCalories(activityName string, durationMinutes int) float64
	ExtractBodyComposition(sheetText string) BodyComposition
}

type estimateService struct {
	config *config.EstimateConfig
	client *http.Client
}

func NewEstimateService(cfg *config.EstimateConfig) EstimateService {
	return &estimateService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (s *estimateService) AnalyzeMeal(description string) MealAnalysis {
	fallback := MealAnalysis{Description: "AI 분석에 실패했습니다."}

	prompt := fmt.Sprintf(
		"다음 식사의 영양 정보를 추정하세요: %s\n"+
			"JSON으로만 응답하세요. 형식: {\"description\": \"한 줄 설명\", \"calories\": 0, \"carbs\": 0, \"protein\": 0, \"fat\": 0}\n"+
			"칼로리는 kcal, 탄수화물/단백질/지방은 g 단위 숫자입니다. 다른 텍스트는 출력하지 마세요.",
		description,
	)

	content, err := s.callChatAPI(prompt)
	if err != nil {
		logger.Warn("Meal analysis failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return fallback
	}

	var analysis MealAnalysis
	if err := json.Unmarshal([]byte(extractJSON(content)), &analysis); err != nil {
		logger.Warn("Meal analysis response was not valid JSON, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return fallback
	}
	return analysis
}

// EstimateWorkoutCalories 실패 시 분당 5kcal 근사치로 대체한다.
func (s *estimateService) EstimateWorkoutCalories(activityName string, durationMinutes int) float64 {
	fallback := float64(durationMinutes) * 5

	prompt := fmt.Sprintf(
		"성인이 %s 운동을 %d분 했을 때 소모 칼로리를 추정하세요.\n"+
			"JSON으로만 응답하세요. 형식: {\"calories\": 0}",
		activityName, durationMinutes,
	)

	content, err := s.callChatAPI(prompt)
	if err != nil {
		logger.Warn("Calorie estimation failed, using fallback", map[string]interface{}{
			"error":            err.Error(),
			"duration_minutes": durationMinutes,
		})
		return fallback
	}

	var result struct {
		Calories float64 `json:"calories"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &result); err != nil || result.Calories <= 0 {
		return fallback
	}
	return result.Calories
}

func (s *estimateService) ExtractBodyComposition(sheetText string) BodyComposition {
	var fallback BodyComposition

	prompt := fmt.Sprintf(
		"다음 인바디 결과지 텍스트에서 체중(kg), 골격근량(kg), 체지방률(%%), 인바디 점수를 추출하세요:\n%s\n"+
			"JSON으로만 응답하세요. 형식: {\"weight\": 0, \"skeletal_muscle\": 0, \"body_fat_percentage\": 0, \"score\": 0}",
		sheetText,
	)

	content, err := s.callChatAPI(prompt)
	if err != nil {
		logger.Warn("Body composition extraction failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return fallback
	}

	var composition BodyComposition
	if err := json.Unmarshal([]byte(extractJSON(content)), &composition); err != nil {
		return fallback
	}
	return composition
}

func (s *estimateService) callChatAPI(prompt string) (string, error) {
	if s.config.APIKey == "" {
		return "", fmt.Errorf("estimate API key is not configured")
	}

	reqData := chatRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", s.config.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.config.APIKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("estimate API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from estimate API")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// extractJSON 모델이 코드 블록으로 감싸 응답하는 경우를 처리한다
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			return content[start : end+1]
		}
	}
	return content
}
