package service

import "nguvan_backend/internals/features/practice/quizzes/model"

type ScoreResult struct {
	Score       float64
	TotalPoints float64
}

// ComputeScore sums pointsEarned of answers marked correct against the
// total points of the quiz questions. Ungraded (isCorrect nil) answers count 0.
func ComputeScore(answers []model.QuizAttemptAnswerModel, questions []model.QuizQuestionModel) ScoreResult {
	var r ScoreResult
	for i := range answers {
		if answers[i].Counts() {
			r.Score += answers[i].QuizAttemptAnswerPointsEarned
		}
	}
	for i := range questions {
		r.TotalPoints += questions[i].QuizQuestionPoints
	}
	return r
}

// GradeChoice is the auto-grading rule for a multiple_choice answer.
func GradeChoice(question *model.QuizQuestionModel, selected *model.QuizOptionModel) (isCorrect bool, points float64) {
	if question == nil || selected == nil || !question.IsMultipleChoice() {
		return false, 0
	}
	if selected.QuizOptionIsCorrect && selected.QuizOptionQuestionID == question.QuizQuestionID {
		return true, question.QuizQuestionPoints
	}
	return false, 0
}
