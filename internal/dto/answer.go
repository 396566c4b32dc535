package dto

// UpsertAnswerRequest is the save-answer payload. Pointer fields distinguish
// "absent" from "empty": absent fields keep their stored value.
type UpsertAnswerRequest struct {
	TextResponse   *string `json:"text_response"`
	RespondentName *string `json:"respondent_name"`
	RespondentRole *string `json:"respondent_role"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status"`
}

// BulkStatusRequest updates the status of many questions at once.
type BulkStatusRequest struct {
	QuestionIDs []int64 `json:"question_ids"`
	Status      string  `json:"status"`
}

// BulkStatusResponse reports the number of successfully updated questions.
type BulkStatusResponse struct {
	Updated int `json:"updated"`
}
