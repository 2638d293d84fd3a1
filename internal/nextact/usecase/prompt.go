package usecase

import (
	"fmt"
	"strings"

	"nextact/internal/nextact"
)

const chatSystemPrompt = `Bạn là trợ lý giúp người dùng quản lý và chuẩn bị cho công việc của họ.
Thông tin công việc:
- Tiêu đề: %s
- Mô tả: %s
- Hạn chót: %s

Trả lời câu hỏi của người dùng cụ thể, hữu ích và bám sát công việc này.
Với yêu cầu gợi ý chung, hãy nêu các bước chuẩn bị, điều cần lưu ý và thời gian cần dành ra.
Với câu hỏi cụ thể, trả lời thẳng vào câu hỏi.
Trả lời bằng tiếng Việt, ngắn gọn, dễ hiểu.`

func (uc *implUseCase) buildChatPrompt(input nextact.ChatInput, dueDate string) string {
	desc := strings.TrimSpace(input.TaskDescription)
	if desc == "" {
		desc = "(Không có mô tả)"
	}
	if dueDate == "" {
		dueDate = "(Không có hạn chót)"
	}

	system := fmt.Sprintf(chatSystemPrompt, strings.TrimSpace(input.TaskTitle), desc, dueDate)
	return system + "\n\nCâu hỏi của người dùng: " + strings.TrimSpace(input.Message)
}
