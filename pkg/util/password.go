package util

import (
	"golang.org/x/crypto/bcrypt"
)

// 기본값(10)보다 높게 잡는다. 로그인 빈도가 낮아 비용 증가를 감수할 수 있다.
const bcryptCost = 12

// HashPassword 평문 비밀번호의 bcrypt 해시를 만든다.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword 평문 비밀번호가 저장된 해시와 일치하는지 확인한다.
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
