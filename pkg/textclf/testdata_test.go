package textclf_test

import "nextact/pkg/textclf"

func urgentNormalCorpus() []textclf.Example {
	return []textclf.Example{
		{Text: "gấp nộp báo cáo ngay", Label: "urgent"},
		{Text: "khẩn cấp sửa lỗi server", Label: "urgent"},
		{Text: "gấp gọi khách hàng ngay", Label: "urgent"},
		{Text: "khẩn cấp họp ban giám đốc", Label: "urgent"},
		{Text: "nộp thuế gấp ngay", Label: "urgent"},
		{Text: "sửa lỗi khẩn cấp", Label: "urgent"},
		{Text: "mua sữa cho con", Label: "normal"},
		{Text: "đọc sách buổi tối", Label: "normal"},
		{Text: "mua rau ngoài chợ", Label: "normal"},
		{Text: "tưới cây ngoài vườn", Label: "normal"},
		{Text: "đọc báo buổi sáng", Label: "normal"},
		{Text: "tưới cây buổi chiều", Label: "normal"},
	}
}

func threeLabelCorpus() []textclf.Example {
	var out []textclf.Example
	for i := 0; i < 10; i++ {
		out = append(out,
			textclf.Example{Text: "học bài môn toán", Label: "study"},
			textclf.Example{Text: "chạy bộ công viên", Label: "health"},
			textclf.Example{Text: "họp dự án công ty", Label: "work"},
		)
	}
	return out
}
