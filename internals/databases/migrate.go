package database

import (
	"log"

	adminModel "gradus_backend/internals/features/admins/model"
	contentModel "gradus_backend/internals/features/content/model"
	courseModel "gradus_backend/internals/features/courses/course/model"
	detailModel "gradus_backend/internals/features/courses/course_detail/model"
	enrollmentModel "gradus_backend/internals/features/enrollments/model"
	eventModel "gradus_backend/internals/features/events/model"
	progressModel "gradus_backend/internals/features/progress/model"
	userModel "gradus_backend/internals/features/users/model"
)

// Migrate keeps the schema in sync at boot. gen_random_uuid() needs the
// pgcrypto extension on Postgres < 13.
func Migrate() {
	err := DB.AutoMigrate(
		&adminModel.AdminUserModel{},
		&adminModel.TokenBlacklist{},
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&detailModel.CourseDetailModel{},
		&enrollmentModel.EnrollmentModel{},
		&progressModel.ProgressModel{},
		&eventModel.EventModel{},
		&contentModel.BannerModel{},
		&contentModel.PartnerLogoModel{},
		&contentModel.TestimonialVideoModel{},
		&contentModel.ExpertVideoModel{},
		&contentModel.WhyGradusVideoModel{},
		&contentModel.BlogModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database schema up to date")
}
