package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentController "gradus_backend/internals/features/content/controller"
)

func ContentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	bannerCtrl := contentController.NewBannerController(db)
	partnerCtrl := contentController.NewPartnerController(db)
	videoCtrl := contentController.NewVideoContentController(db)
	blogCtrl := contentController.NewBlogController(db)

	banners := admin.Group("/banners")
	banners.Get("/", bannerCtrl.List)
	banners.Post("/", bannerCtrl.Create)
	banners.Put("/:id", bannerCtrl.Update)
	banners.Delete("/:id", bannerCtrl.Delete)

	partners := admin.Group("/partners")
	partners.Get("/", partnerCtrl.List)
	partners.Post("/", partnerCtrl.Create)
	partners.Put("/:id", partnerCtrl.Update)
	partners.Delete("/:id", partnerCtrl.Delete)

	testimonials := admin.Group("/testimonials")
	testimonials.Get("/", videoCtrl.ListTestimonials)
	testimonials.Post("/", videoCtrl.CreateTestimonial)
	testimonials.Put("/:id", videoCtrl.UpdateTestimonial)
	testimonials.Delete("/:id", videoCtrl.DeleteTestimonial)

	experts := admin.Group("/expert-videos")
	experts.Get("/", videoCtrl.ListExpertVideos)
	experts.Post("/", videoCtrl.CreateExpertVideo)
	experts.Put("/:id", videoCtrl.UpdateExpertVideo)
	experts.Delete("/:id", videoCtrl.DeleteExpertVideo)

	admin.Get("/why-gradus-video", videoCtrl.WhyGradusVideo)
	admin.Put("/why-gradus-video", videoCtrl.UpsertWhyGradusVideo)

	blogs := admin.Group("/blogs")
	blogs.Get("/", blogCtrl.List)
	blogs.Post("/", blogCtrl.Create)
	blogs.Put("/:id", blogCtrl.Update)
	blogs.Delete("/:id", blogCtrl.Delete)
	blogs.Post("/:id/cover", blogCtrl.UploadCover)
}

func ContentPublicRoutes(public fiber.Router, db *gorm.DB) {
	bannerCtrl := contentController.NewBannerController(db)
	partnerCtrl := contentController.NewPartnerController(db)
	videoCtrl := contentController.NewVideoContentController(db)
	blogCtrl := contentController.NewBlogController(db)

	public.Get("/banners", bannerCtrl.PublicList)
	public.Get("/partners", partnerCtrl.PublicList)
	public.Get("/testimonials", videoCtrl.PublicTestimonials)
	public.Get("/expert-videos", videoCtrl.PublicExpertVideos)
	public.Get("/why-gradus-video", videoCtrl.WhyGradusVideo)
	public.Get("/blogs", blogCtrl.PublicList)
	public.Get("/blogs/:slug", blogCtrl.PublicGet)
}
