package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/paywall-system/internal/core/ports"
)

// ArticleHandler serves the public article routes and the member-only routes.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List returns every article.
//
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Success      200  {array}   domain.Article
// @Failure      500  {object}  errorResponse
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.ListArticles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Show returns one article. Anonymous sessions spend one pageview per call.
//
// @Summary      Read an article
// @Description  Anonymous sessions may read 3 articles; logged-in sessions read any article.
// @Tags         articles
// @Produce      json
// @Param        id   path      int  true  "Article id"
// @Success      200  {object}  domain.Article
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  limitResponse
// @Failure      404  {object}  errorResponse
// @Router       /articles/{id} [get]
func (h *ArticleHandler) Show(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}
	id, err := articleID(c)
	if err != nil {
		return err
	}

	article, err := h.service.ReadArticle(c.Request().Context(), sid, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// MembersList returns the member-only articles.
//
// @Summary      List member-only articles
// @Tags         members
// @Produce      json
// @Success      200  {array}   domain.Article
// @Failure      401  {object}  errorResponse
// @Router       /members_only_articles [get]
func (h *ArticleHandler) MembersList(c echo.Context) error {
	articles, err := h.service.ListMemberArticles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// MembersShow returns any article to a logged-in session without metering.
//
// @Summary      Read an article as a member
// @Tags         members
// @Produce      json
// @Param        id   path      int  true  "Article id"
// @Success      200  {object}  domain.Article
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /members_only_articles/{id} [get]
func (h *ArticleHandler) MembersShow(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}

	article, err := h.service.GetArticle(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}
