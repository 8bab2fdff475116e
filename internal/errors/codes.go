package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"       // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 이메일/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"      // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"      // 잘못된 토큰
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"      // 토큰 폐기됨
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"       // 이메일 중복

	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // 접근 권한 없음
	AuthzAccessDenied = "AUTHZ_ACCESS_DENIED"  // 작업 권한 없음
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // 권한 정보 없음
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"     // 관리자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // 잘못된 ID
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // 잘못된 형식
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"  // 범위 초과
	ValidationRequired      = "VALIDATION_REQUIRED"       // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConflict      = "RESOURCE_CONFLICT"       // 충돌

	// ==================== 지점 (BRANCH_) ====================
	BranchNotFound      = "BRANCH_NOT_FOUND"       // 지점 없음
	BranchAlreadyExists = "BRANCH_ALREADY_EXISTS"  // 지점명 중복
	BranchNameRequired  = "BRANCH_NAME_REQUIRED"   // 지점명 필수

	// ==================== 목표 (TARGET_) ====================
	TargetInvalidAmount   = "TARGET_INVALID_AMOUNT"   // 잘못된 목표 금액
	TargetInvalidPosition = "TARGET_INVALID_POSITION" // 잘못된 직책

	// ==================== 회원 (MEMBER_) ====================
	MemberNotFound       = "MEMBER_NOT_FOUND"        // 회원 없음
	MemberRecordNotFound = "MEMBER_RECORD_NOT_FOUND" // 계정에 연결된 회원 데이터 없음
	MemberInactive       = "MEMBER_INACTIVE"         // 비활성 회원

	// ==================== 매출 (SALES_) ====================
	SalesInvalidAmount = "SALES_INVALID_AMOUNT" // 잘못된 매출 금액
	SalesInvalidSource = "SALES_INVALID_SOURCE" // 잘못된 유입 경로
	SalesInvalidDate   = "SALES_INVALID_DATE"   // 잘못된 날짜 형식

	// ==================== 설문 (SURVEY_) ====================
	SurveyNotFound     = "SURVEY_NOT_FOUND"      // 설문 없음
	SurveyInvalidScore = "SURVEY_INVALID_SCORE"  // 점수 범위 초과

	// ==================== 기구 (EQUIPMENT_) ====================
	EquipmentNotFound        = "EQUIPMENT_NOT_FOUND"         // 기구 없음
	EquipmentAlreadyExists   = "EQUIPMENT_ALREADY_EXISTS"    // 기구 이름 중복
	EquipmentInvalidCategory = "EQUIPMENT_INVALID_CATEGORY"  // 잘못된 분류
	EquipmentReportNotFound  = "EQUIPMENT_REPORT_NOT_FOUND"  // 등록 요청 없음
	EquipmentReportHandled   = "EQUIPMENT_REPORT_HANDLED"    // 이미 처리된 요청

	// ==================== 기록 (ENTRY_) ====================
	EntryNotFound    = "ENTRY_NOT_FOUND"     // 기록 없음
	EntryInvalidDate = "ENTRY_INVALID_DATE"  // 잘못된 날짜 형식

	// ==================== 일정 (SCHEDULE_) ====================
	ScheduleNotFound = "SCHEDULE_NOT_FOUND" // 일정 없음

	// ==================== 알림 (NOTIFICATION_) ====================
	NotificationNotFound = "NOTIFICATION_NOT_FOUND" // 알림 없음

	// ==================== 업로드 (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // 잘못된 파일 형식
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"    // 파일 너무 큼
	UploadFailed          = "UPLOAD_FAILED"            // 업로드 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // 외부 API 오류
	InternalConfigError   = "INTERNAL_CONFIG_ERROR"   // 설정 오류
)
