package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bemove/bemove-backend/config"
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// 회원 명부 xlsx 컬럼 순서
// 이름 | 연락처 | 나이 | 성별 | 신장 | 체중 | 등록일 | 총 세션 | 결제 금액 | 유입 경로 | 목표
const minColumns = 7

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Repository 생성
	memberRepo := repository.NewMemberRepository(db.GetDB())

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	members, err := readMembersFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total members to import: %d\n", len(members))

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	// 배치로 저장
	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := memberRepo.BulkCreate(members, batchSize); err != nil {
		log.Fatal("Failed to bulk create members:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total members imported: %d\n", len(members))
}

func readMembersFromXLSX(filePath string) ([]model.Member, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	// 첫 번째 시트 이름 가져오기
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	// 모든 행 읽기
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var members []model.Member
	seenMembers := make(map[string]bool) // 중복 제거용 (이름+연락처)
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < minColumns {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		phone := strings.TrimSpace(row[1])
		joinDate := strings.TrimSpace(row[6])

		// 1. 기본 필수 항목 검사
		if name == "" || joinDate == "" {
			skippedCount++
			continue
		}

		// 2. 등록일 형식 검증 (YYYY-MM-DD)
		if !isValidDate(joinDate) {
			skippedCount++
			continue
		}

		// 중복 체크 (이름+연락처 기준)
		key := fmt.Sprintf("%s|%s", name, phone)
		if seenMembers[key] {
			skippedCount++
			continue
		}
		seenMembers[key] = true

		member := model.Member{
			Name:          name,
			PhoneNumber:   phone,
			Age:           parseIntColumn(row, 2),
			Gender:        normalizeGender(columnValue(row, 3)),
			Height:        parseFloatColumn(row, 4),
			InitialWeight: parseFloatColumn(row, 5),
			JoinDate:      joinDate,
			TotalSessions: parseIntColumn(row, 7),
			PaymentAmount: int64(parseIntColumn(row, 8)),
			Source:        normalizeSource(columnValue(row, 9)),
			Goal:          columnValue(row, 10),
			Status:        model.MemberActive,
		}

		members = append(members, member)

		// 진행 상황 출력 (500개마다)
		if len(members)%500 == 0 {
			fmt.Printf("Processed %d members...\n", len(members))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid members: %d\n", len(members))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return members, nil
}

var dateReg = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func isValidDate(date string) bool {
	return dateReg.MatchString(date)
}

func columnValue(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func parseIntColumn(row []string, index int) int {
	v, err := strconv.Atoi(columnValue(row, index))
	if err != nil {
		return 0
	}
	return v
}

func parseFloatColumn(row []string, index int) float64 {
	v, err := strconv.ParseFloat(columnValue(row, index), 64)
	if err != nil {
		return 0
	}
	return v
}

// normalizeGender 명부의 한글 표기를 내부 표기로 바꾼다
func normalizeGender(raw string) string {
	switch raw {
	case "남", "남자", "male", "M", "m":
		return "male"
	case "여", "여자", "female", "F", "f":
		return "female"
	default:
		return ""
	}
}

// normalizeSource 명부의 유입 경로 표기를 내부 표기로 바꾼다
func normalizeSource(raw string) model.SalesSource {
	switch raw {
	case "OT":
		return model.SourceOT
	case "지인 소개", "소개":
		return model.SourceReferral
	case "무료 체험", "체험":
		return model.SourceFreeTrial
	case "워크인":
		return model.SourceWalkIn
	default:
		return model.SourceOther
	}
}
