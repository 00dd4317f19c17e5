package services

// Services defined in this package:
// - AuthService: Handles authentication and user registration
// - UniversityService: Handles university lookups
// - UserService: Handles user profiles and the derived club/event views
// - ClubService: Handles clubs, membership, and roles
// - EventService: Handles events and registrations
// - ClubRequestService: Handles the club-creation review workflow
// - AnnouncementService: Handles club announcements, likes, and comments
// - RecruitmentService: Handles team-recruitment posts and applications
