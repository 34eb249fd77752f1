package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	//400 入力不足（lookup前に弾く）
	ErrMissingCredentials = errors.New("email and password are required")
	//400 認証失敗。「ユーザーがいない」と「パスワード違い」で
	//メッセージを変えない（アカウント列挙対策）
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	//403 停止ユーザー
	ErrUserInactive = errors.New("user inactive")
	//400 DB到達不能でログイン処理ができない
	ErrAuthUnavailable = errors.New("authentication service unavailable")
	//401 refresh token未指定
	ErrRefreshMissing = errors.New("refresh token is required")
	//403 refresh tokenの期限切れ（invalidと区別して返す）
	ErrRefreshExpired = errors.New("refresh token has expired")
	//403 署名不正・ユーザー不在・保存値と不一致など期限切れ以外の全て
	ErrRefreshInvalid = errors.New("invalid refresh token")
	//401 認証必須
	ErrUnauthorized = errors.New("unauthorized")
	//500
	ErrInternal = errors.New("internal error")
)

// 開発フォールバックで返す固定ユーザーID。
// 毎回同じIDになるようにしておく。
const devFallbackUserID = "00000000-0000-4000-8000-000000000001"

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, email string, password string, name string) error
}

type UserDTO struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type AuthRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthLoginResponse struct {
	User         UserDTO `json:"user"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
}

// refresh成功時のtokenペア。
type TokenPairDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	tokens    *token.Manager
	validator AuthValidator
}

func NewAuthUsecase(
	cfg config.Config,
	users repo.UserRepository,
	tokens *token.Manager,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		tokens:    tokens,
		validator: validator,
	}
}

// Registerはアカウントを作るだけ。tokenはここでは発行しない
// （クライアントは続けてloginを呼ぶ）。
func (u *AuthUsecase) Register(ctx context.Context, req AuthRegisterRequest) (*UserDTO, error) {
	//入力検証（validatorに寄せる）。エラーメッセージはそのまま返す
	if err := u.validator.ValidateRegister(ctx, req.Email, req.Password, req.Name); err != nil {
		return nil, NewHTTPError(400, err.Error())
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrInternal
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(pwHash),
		Name:         req.Name,
		IsActive:     true,
	}

	//unique制約違反はvalidatorの重複チェックをすり抜けた場合の保険
	if err := u.users.Create(ctx, user); err != nil {
		return nil, NewHTTPError(400, "Email already exists")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

func (u *AuthUsecase) Login(ctx context.Context, req AuthLoginRequest) (*AuthLoginResponse, error) {
	//必須チェック（lookupの前）
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := u.users.FindByEmail(ctx, req.Email)
	if err != nil {
		//DBに届かない。開発フォールバックが有効なら合成ユーザーで通す
		if u.devFallbackEnabled() {
			return u.devFallbackLogin(req.Email)
		}
		return nil, ErrAuthUnavailable
	}

	//「いない」と「パスワード違い」は同じエラー
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	//停止ユーザーはログイン不可
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	now := time.Now()

	accessToken, err := u.tokens.IssueAccess(user.ID, user.Email, now)
	if err != nil {
		return nil, ErrInternal
	}
	refreshToken, err := u.tokens.IssueRefresh(user.ID, user.Email, now)
	if err != nil {
		return nil, ErrInternal
	}

	//新しいrefresh tokenを保存。前のtokenはこれで無効になる
	if err := u.users.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, ErrInternal
	}

	//last_login更新（失敗しても継続）
	user.LastLoginAt = &now
	_ = u.users.Update(ctx, user)

	return &AuthLoginResponse{
		User:         toUserDTO(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refreshは有効なrefresh tokenを新しいペアに交換する。
// 交換は厳密に1回限り：保存中のtokenと一致しない場合は拒否。
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*TokenPairDTO, error) {
	if refreshToken == "" {
		return nil, ErrRefreshMissing
	}

	//署名と期限。期限切れだけ区別して返す
	claims, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return nil, ErrRefreshExpired
		}
		return nil, ErrRefreshInvalid
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return nil, ErrRefreshInvalid
	}

	//保存中のtokenと一致しなければ拒否。
	//ローテーション済みtokenの再利用はここで弾かれる
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, ErrRefreshInvalid
	}

	now := time.Now()

	newAccess, err := u.tokens.IssueAccess(user.ID, user.Email, now)
	if err != nil {
		return nil, ErrInternal
	}
	newRefresh, err := u.tokens.IssueRefresh(user.ID, user.Email, now)
	if err != nil {
		return nil, ErrInternal
	}

	//古いtokenを上書き（ローテーション）
	if err := u.users.UpdateRefreshToken(ctx, user.ID, newRefresh); err != nil {
		return nil, ErrInternal
	}

	return &TokenPairDTO{
		AccessToken:  newAccess,
		RefreshToken: newRefresh,
	}, nil
}

// Logoutは保存中のrefresh tokenを消す。
// アカウントの存在を漏らさないため、結果によらず成功扱い。
func (u *AuthUsecase) Logout(ctx context.Context, email string) {
	if email == "" {
		return
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return
	}

	_ = u.users.UpdateRefreshToken(ctx, user.ID, "")
}

// Meは検証済みリクエストのユーザープロフィールを返す。
func (u *AuthUsecase) Me(ctx context.Context, userID string) (*UserDTO, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, ErrUnauthorized
	}

	dto := toUserDTO(user)
	return &dto, nil
}

// 開発フォールバックの有効判定。productionでは常にfalse。
func (u *AuthUsecase) devFallbackEnabled() bool {
	return u.cfg.DevAuthFallback && !u.cfg.IsProduction()
}

// DB停止中の開発用ログイン。tokenは発行するがDBには何も書かない。
func (u *AuthUsecase) devFallbackLogin(email string) (*AuthLoginResponse, error) {
	now := time.Now()

	accessToken, err := u.tokens.IssueAccess(devFallbackUserID, email, now)
	if err != nil {
		return nil, ErrInternal
	}
	refreshToken, err := u.tokens.IssueRefresh(devFallbackUserID, email, now)
	if err != nil {
		return nil, ErrInternal
	}

	return &AuthLoginResponse{
		User: UserDTO{
			ID:          devFallbackUserID,
			Email:       email,
			Name:        "Development User",
			IsActive:    true,
			CreatedAt:   now,
			LastLoginAt: &now,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// model.UserをAPI返却用DTOに変換。
func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
