// Package redis реализует хранилище пользователей и упражнений в Redis.
//
// Раскладка ключей:
//
//	user:{id}            hash  id, username, created_at
//	username:{name}      string id пользователя, занимается через SETNX
//	users:index          list  id пользователей в порядке регистрации
//	exercise:{id}        hash  id, user_id, description, duration, date
//	user:{id}:exercises  list  id упражнений пользователя в порядке добавления
package redis

const (
	usersIndexKey = "users:index"

	fieldID          = "id"
	fieldUsername    = "username"
	fieldCreatedAt   = "created_at"
	fieldUserID      = "user_id"
	fieldDescription = "description"
	fieldDuration    = "duration"
	fieldDate        = "date"
)

func userKey(id string) string {
	return "user:" + id
}

func usernameKey(username string) string {
	return "username:" + username
}

func exerciseKey(id string) string {
	return "exercise:" + id
}

func userExercisesKey(userID string) string {
	return "user:" + userID + ":exercises"
}
