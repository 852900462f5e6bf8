package util

import (
	"fmt"
	"time"

	"minimall/pkg/snowflake"
)

// GenerateOrderSn 生成业务订单号：日期前缀 + 雪花ID
func GenerateOrderSn() string {
	return fmt.Sprintf("%s%d", time.Now().Format("20060102"), snowflake.GenID())
}
