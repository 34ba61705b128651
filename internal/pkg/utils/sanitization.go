package utils

import (
	"pidelocal-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}

func SanitizeAdminLoginRequest(request *requests.AdminLogin) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreateOrderRequest(request *requests.CreateOrder) {
	request.CustomerName = strings.TrimSpace(request.CustomerName)
	request.CustomerPhone = strings.TrimSpace(request.CustomerPhone)
	request.CustomerEmail = strings.ToLower(strings.TrimSpace(request.CustomerEmail))
	request.PickupDate = strings.TrimSpace(request.PickupDate)
	request.PickupTime = strings.TrimSpace(request.PickupTime)
	request.PaymentMethod = strings.ToLower(strings.TrimSpace(request.PaymentMethod))
	request.PromotionCode = strings.ToUpper(strings.TrimSpace(request.PromotionCode))
	request.Notes = strings.TrimSpace(request.Notes)
	for i := range request.Items {
		request.Items[i].ProductID = strings.TrimSpace(request.Items[i].ProductID)
	}
}

func SanitizeUpsertProductRequest(request *requests.UpsertProduct) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	request.Category = strings.TrimSpace(request.Category)
	request.Allergens = cleanWhiteSpaceFromEachStringOfAnArray(request.Allergens)
}

func SanitizeUpsertPromotionRequest(request *requests.UpsertPromotion) {
	request.Name = strings.TrimSpace(request.Name)
	request.Code = strings.ToUpper(strings.TrimSpace(request.Code))
	request.Type = strings.ToLower(strings.TrimSpace(request.Type))
}

func SanitizeUpdatePaymentSettingsRequest(request *requests.UpdatePaymentSettings) {
	request.AccountID = strings.TrimSpace(request.AccountID)
	request.Currency = strings.ToLower(strings.TrimSpace(request.Currency))
}

func SanitizeCreateBusinessRequest(request *requests.CreateBusiness) {
	request.Slug = strings.ToLower(strings.TrimSpace(request.Slug))
	request.Name = strings.TrimSpace(request.Name)
	request.Timezone = strings.TrimSpace(request.Timezone)
}

func SanitizeAddMemberRequest(request *requests.AddMember) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Role = strings.ToLower(strings.TrimSpace(request.Role))
	request.Name = strings.TrimSpace(request.Name)
}
