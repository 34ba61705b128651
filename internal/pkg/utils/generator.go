package utils

import (
	"fmt"
	"path/filepath"
	"pidelocal-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.NewString())
}

// GenerateOrderNumber builds the short human readable code printed on kitchen tickets.
func GenerateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%s", now.Format("0102"), suffix)
}

func GenerateObjectName(format, slug, fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf(format, slug, uuid.NewString(), extension)
}
