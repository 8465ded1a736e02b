package jwt

import (
	"ShareMeal-Backend/domain"
	"ShareMeal-Backend/internal/utils"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"log"
	"time"
)

type (
	// JWTService is the identity-provider oracle adapter: it turns a bearer
	// token into a VerifiedIdentity or rejects it. Verification is pure; no
	// issuer state is created on the request path.
	JWTService interface {
		GenerateToken(email string, subject string) string
		ValidateToken(token string) (*jwt.Token, error)
		GetIdentityByToken(token string) (domain.VerifiedIdentity, error)
	}

	jwtIdentityClaim struct {
		Email string `json:"email"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "SHAREMEAL",
	}
}

func (j *jwtService) GenerateToken(email string, subject string) string {
	claims := jwtIdentityClaim{
		email,
		jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 120)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtIdentityClaim{}, j.parseToken)
}

// Every verification failure collapses into token-expired/token-invalid; the
// underlying parse error stays diagnostic only and is never surfaced as a
// distinct caller-visible kind.
func (j *jwtService) GetIdentityByToken(token string) (domain.VerifiedIdentity, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.VerifiedIdentity{}, domain.ErrTokenExpired
		}
		return domain.VerifiedIdentity{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return domain.VerifiedIdentity{}, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtIdentityClaim)
	if claims.Email == "" || claims.Subject == "" {
		return domain.VerifiedIdentity{}, domain.ErrTokenInvalid
	}

	return domain.VerifiedIdentity{
		Email:   claims.Email,
		Subject: claims.Subject,
	}, nil
}
