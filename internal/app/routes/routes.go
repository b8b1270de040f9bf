package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hagwon-app/hagwon/internal/app/controllers"
	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	registrationController *controllers.RegistrationController,
	studentController *controllers.StudentController,
	noticeController *controllers.NoticeController,
	lectureController *controllers.LectureController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Message:   "ok",
			Timestamp: time.Now(),
		})
	})

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.SignUp)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.GET("/check-id/:user_id", authController.CheckID)
	}

	// Academy self-registration and join requests are open; an account is
	// needed before a join request can be approved, not before it is filed.
	v1.POST("/academies", registrationController.RegisterAcademy)
	v1.POST("/registrations", registrationController.RegisterUser)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		registrations := authenticated.Group("/registrations")
		registrations.Use(authMiddleware.RolesRequired(models.RoleChief))
		{
			registrations.POST("/decide", registrationController.DecideRegistration)
			registrations.GET("/users", registrationController.ListPendingUsers)
			registrations.GET("/academies", registrationController.ListPendingAcademies)
		}

		students := authenticated.Group("/students")
		{
			students.GET("/:user_id/lectures", studentController.GetStudentLectures)

			studentsStaff := students.Group("")
			studentsStaff.Use(authMiddleware.RolesRequired(models.RoleChief, models.RoleTeacher))
			{
				studentsStaff.GET("", studentController.ListStudents)
				studentsStaff.DELETE("/:user_id", studentController.RemoveStudent)
			}
		}

		notices := authenticated.Group("/notices")
		{
			notices.GET("", noticeController.ListNotices)
			notices.GET("/:id", noticeController.GetNotice)

			noticesStaff := notices.Group("")
			noticesStaff.Use(authMiddleware.RolesRequired(models.RoleChief, models.RoleTeacher))
			{
				noticesStaff.POST("", noticeController.CreateNotice)
				noticesStaff.PUT("/:id", noticeController.UpdateNotice)
				noticesStaff.DELETE("/:id", noticeController.DeleteNotice)
			}
		}

		lectures := authenticated.Group("/lectures")
		{
			lectures.GET("", lectureController.ListLectures)
			lectures.GET("/:id/students", lectureController.ListStudents)
			lectures.GET("/:id/exam-types", lectureController.ListExamTypes)
			lectures.GET("/:id/exams", lectureController.ListExams)
			lectures.GET("/:id/exams/:examId/scores", lectureController.ListScores)

			lecturesChief := lectures.Group("")
			lecturesChief.Use(authMiddleware.RolesRequired(models.RoleChief))
			{
				lecturesChief.POST("", lectureController.CreateLecture)
				lecturesChief.PUT("/:id", lectureController.UpdateLecture)
				lecturesChief.DELETE("/:id", lectureController.DeleteLecture)
			}

			lecturesStaff := lectures.Group("")
			lecturesStaff.Use(authMiddleware.RolesRequired(models.RoleChief, models.RoleTeacher))
			{
				lecturesStaff.POST("/:id/students", lectureController.AddStudent)
				lecturesStaff.DELETE("/:id/students/:user_id", lectureController.RemoveStudent)
				lecturesStaff.POST("/:id/exam-types", lectureController.CreateExamType)
				lecturesStaff.DELETE("/:id/exam-types/:typeId", lectureController.DeleteExamType)
				lecturesStaff.POST("/:id/exams", lectureController.CreateExam)
				lecturesStaff.DELETE("/:id/exams/:examId", lectureController.DeleteExam)
				lecturesStaff.POST("/:id/exams/:examId/scores", lectureController.CreateScores)
				lecturesStaff.PUT("/:id/exams/:examId/scores", lectureController.UpdateScores)
			}
		}
	}
}
