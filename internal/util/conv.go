package util

import (
	"strconv"
	"strings"
)

// ParseUserID 解析路径中的用户 ID，非正整数返回 ErrInvalidUserID
func ParseUserID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidUserID
	}
	return uint(id), nil
}

// ParsePagination 缺省时使用默认值；非数字或 <= 0 视为非法
func ParsePagination(pageStr, limitStr string) (int, int, error) {
	page, err := parsePositive(pageStr, DefaultPage)
	if err != nil {
		return 0, 0, err
	}
	limit, err := parsePositive(limitStr, DefaultPageLimit)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func parsePositive(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidPagination
	}
	return n, nil
}
