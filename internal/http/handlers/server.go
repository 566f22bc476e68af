package handlers

import (
	"github.com/wearapparel/admin-console/internal/auth"
	"github.com/wearapparel/admin-console/internal/mailsvc"
	repo "github.com/wearapparel/admin-console/internal/repo"
)

var (
	orderRepo repo.OrderRepository
	itemRepo  repo.OrderItemRepository
	userRepo  repo.UserRepository
	statsRepo repo.StatsRepository

	tokenStore   auth.TokenStore
	mailer       mailsvc.Mailer
	resetURLBase string
)

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetOrderItemRepo(r repo.OrderItemRepository) {
	itemRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetStatsRepo(r repo.StatsRepository) {
	statsRepo = r
}

func SetTokenStore(s auth.TokenStore) {
	tokenStore = s
}

func SetMailer(m mailsvc.Mailer) {
	mailer = m
}

func SetResetURLBase(base string) {
	resetURLBase = base
}
