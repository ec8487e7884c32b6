package shared

import (
	"github.com/gin-gonic/gin"

	"github.com/park285/arabic-sarf-go/internal/httperror"
	"github.com/park285/arabic-sarf-go/internal/middleware"
)

// WriteError 는 에러 응답을 작성한다.
func WriteError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	status, payload := httperror.Response(err, middleware.GetRequestID(c))
	c.JSON(status, payload)
}

// BindJSON 는 요청 본문을 JSON으로 파싱한다.
// 파싱이나 binding 검증에 실패하면 onError 가 만든 오류로 응답하고 false 를 반환한다.
func BindJSON(c *gin.Context, out any, onError func(error) *httperror.Error) bool {
	if c == nil {
		return false
	}
	if err := c.ShouldBindJSON(out); err != nil {
		if onError == nil {
			WriteError(c, err)
			return false
		}
		WriteError(c, onError(err))
		return false
	}
	return true
}
