package ports

type JWTServiceInterface interface {
	GenerateAccessToken(userUUID string) (string, error)
}
